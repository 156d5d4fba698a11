package services

import "errors"

// Sentinel errors mapped to HTTP codes at the controller boundary.
var (
	ErrConglomeradoNoEncontrado = errors.New("conglomerado no encontrado")
	ErrSinBrigadistas           = errors.New("no hay otros brigadistas en este conglomerado para notificar")
	ErrCredencialesInvalidas    = errors.New("usuario o contraseña incorrectos")
)
