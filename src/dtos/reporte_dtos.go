package dtos

import "github.com/InvForestal/IFN-Backend/src/models"

// SubparcelaConteoDTO is a subplot row enriched with its individual and
// sample counts for the conglomerate report.
type SubparcelaConteoDTO struct {
	ID               int `json:"id"`
	IdConglomerado   int `json:"id_conglomerado"`
	NumeroSubparcela int `json:"numero_subparcela"`
	Individuos       int `json:"individuos"`
	Muestras         int `json:"muestras"`
}

type CategoriaConteoDTO struct {
	Nombre   string `json:"nombre"`
	Cantidad int    `json:"cantidad"`
}

// ReporteConglomeradoDTO is the full read-only summary of a conglomerate,
// recomputed on every request.
type ReporteConglomeradoDTO struct {
	ConglomeradoNombre    string                         `json:"conglomeradoNombre"`
	Subparcelas           []SubparcelaConteoDTO          `json:"subparcelas"`
	CategoriaMasFrecuente *string                        `json:"categoriaMasFrecuente"`
	Categorias            []CategoriaConteoDTO           `json:"categorias"`
	Individuos            []models.IndividuoArboreoModel `json:"individuos"`
	Muestras              []models.MuestraModel          `json:"muestras"`
}
