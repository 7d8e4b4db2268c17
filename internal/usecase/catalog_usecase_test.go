package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veltrixai/go-backend/pkg/e"
)

func TestValidateProduct(t *testing.T) {
	uc := &CatalogUseCase{}

	tests := []struct {
		name    string
		req     *SaveProductReq
		wantErr error
	}{
		{"blank name", &SaveProductReq{Name: "  ", Price: 1000}, e.ErrProductNameRequired},
		{"zero price", &SaveProductReq{Name: "Kopi", Price: 0}, e.ErrPriceMustBePositive},
		{"negative price", &SaveProductReq{Name: "Kopi", Price: -5}, e.ErrPriceMustBePositive},
		{"negative stock", &SaveProductReq{Name: "Kopi", Price: 1000, Stock: -1}, e.ErrNegativeStock},
		{"valid", &SaveProductReq{Name: "Kopi", Price: 1000, Stock: 0}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.validateProduct(tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchProductsRejectsEmptyQuery(t *testing.T) {
	uc := NewCatalogUC(nil, nil, nil, nil, nil, testLogger{})

	_, err := uc.SearchProducts(context.Background(), &SearchProductsReq{BusinessID: "biz-1", Query: "   "})

	assert.ErrorIs(t, err, e.ErrEmptyQuery)
}

func TestGenerateDocumentUnknownType(t *testing.T) {
	uc := NewDocumentUC(nil, nil, nil, testLogger{})

	_, err := uc.GenerateDocument(context.Background(), &GenerateDocumentReq{
		BusinessID: "biz-1",
		Type:       "poster",
	})

	assert.ErrorIs(t, err, e.ErrUnknownDocumentType)
}
