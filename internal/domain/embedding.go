package domain

import "time"

// Payload описывает дополнительную информацию вектора
type Payload map[string]any

// Embedding представляет эмбеддинг одного продукта для семантического поиска
type Embedding struct {
	ID      string
	Vector  []float32
	Payload Payload
}

func NewEmbedding(id string, vector []float32, payload Payload) *Embedding {
	return &Embedding{
		ID:      id,
		Vector:  vector,
		Payload: payload,
	}
}

func NewProductPayload(businessID string, productID string, name string, category string, modelVersion string) Payload {
	return Payload{
		"business_id":   businessID,
		"product_id":    productID,
		"name":          name,
		"category":      category,
		"created_at":    time.Now().UTC().UnixNano(),
		"model_version": modelVersion,
	}
}
