package api

import "encoding/json"

// El backend de ventas responde a veces con el recurso a pelo y a veces
// envuelto en {"data": ...}. Estas funciones normalizan ambas formas con un
// parseo discriminado explícito.

// decodeList devuelve la colección como secuencia plana. Ante cualquier forma
// no reconocida degrada a colección vacía: un listado ilegible no tumba la
// pantalla.
func decodeList[T any](raw []byte) []T {
	var list []T
	if err := json.Unmarshal(raw, &list); err == nil && list != nil {
		return list
	}

	var envoltura struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envoltura); err == nil && len(envoltura.Data) > 0 {
		list = nil
		if err := json.Unmarshal(envoltura.Data, &list); err == nil && list != nil {
			return list
		}
	}

	return []T{}
}

// decodeOne devuelve una entidad suelta, desenvolviendo {"data": {...}} si
// hace falta. A diferencia de las colecciones, una entidad ilegible sí es un
// error: el caller pidió un recurso concreto.
func decodeOne[T any](raw []byte) (*T, error) {
	var envoltura struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envoltura); err == nil && len(envoltura.Data) > 0 && envoltura.Data[0] == '{' {
		raw = envoltura.Data
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
