package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoriaPorDAP(t *testing.T) {
	tests := []struct {
		name string
		dap  float64
		want string
	}{
		{"muy pequeño", 0.5, CategoriaBrinzales},
		{"justo debajo de 10", 9.99, CategoriaBrinzales},
		{"límite 10 sube de categoría", 10, CategoriaLatizales},
		{"latizal medio", 20, CategoriaLatizales},
		{"justo debajo de 30", 29.99, CategoriaLatizales},
		{"límite 30 sube de categoría", 30, CategoriaFustal},
		{"fustal medio", 45, CategoriaFustal},
		{"justo debajo de 50", 49.99, CategoriaFustal},
		{"límite 50 sube de categoría", 50, CategoriaFustalGrande},
		{"árbol grande", 120, CategoriaFustalGrande},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoriaPorDAP(tt.dap))
		})
	}
}
