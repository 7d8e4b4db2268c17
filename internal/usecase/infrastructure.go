package usecase

import "context"

// AIService — опаковый клиент генеративной модели: текст, vision и эмбеддинги.
type AIService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	ChatCompletion(ctx context.Context, req *ChatCompletionReq) (string, error)
	ScanReceipt(ctx context.Context, imageData []byte, mimeType string) (*ReceiptScan, error)
	EmbedText(ctx context.Context, text string) (*EmbedTextRes, error)
}

type ImagesInfra interface {
	UploadReceiptImage(ctx context.Context, req *UploadReceiptImageReq) (string, error)
	CleanupImages(keys []string)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
