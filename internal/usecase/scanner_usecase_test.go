package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/pkg/e"
)

type stubReceiptRepo struct {
	created *domain.Receipt
	err     error
}

func (s *stubReceiptRepo) Create(_ context.Context, receipt *domain.Receipt) (*domain.Receipt, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = receipt
	return receipt, nil
}

func (s *stubReceiptRepo) ListRecent(_ context.Context, _ string, _ int) ([]domain.Receipt, error) {
	return nil, nil
}

type stubImagesInfra struct {
	uploadedKey string
	uploadErr   error
	cleaned     []string
}

func (s *stubImagesInfra) UploadReceiptImage(_ context.Context, _ *UploadReceiptImageReq) (string, error) {
	return s.uploadedKey, s.uploadErr
}

func (s *stubImagesInfra) CleanupImages(keys []string) {
	s.cleaned = append(s.cleaned, keys...)
}

func TestScanReceiptValidation(t *testing.T) {
	uc := NewScannerUC(nil, nil, nil, testLogger{})

	tests := []struct {
		name    string
		req     *ScanReceiptReq
		wantErr error
	}{
		{"no image", &ScanReceiptReq{}, e.ErrNoImage},
		{
			"too large",
			&ScanReceiptReq{ImageData: make([]byte, maxReceiptImageSize+1), MimeType: "image/jpeg"},
			e.ErrFileTooLarge,
		},
		{
			"unsupported type",
			&ScanReceiptReq{ImageData: []byte{1, 2, 3}, MimeType: "application/pdf"},
			e.ErrUnsupportedMediaType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.ScanReceipt(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSaveReceiptWithoutImage(t *testing.T) {
	repo := &stubReceiptRepo{}
	uc := NewScannerUC(repo, nil, &stubImagesInfra{}, testLogger{})

	date := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	receipt, err := uc.SaveReceipt(context.Background(), &SaveReceiptReq{
		BusinessID: "biz-1",
		StoreName:  "Toko Maju",
		Date:       &date,
		Total:      52000,
		Items:      []domain.ReceiptItem{{Name: "Gula", Qty: 2, Price: 26000}},
	})

	require.NoError(t, err)
	assert.Equal(t, date, receipt.Date)
	assert.Empty(t, receipt.ImageKey)
}

func TestSaveReceiptDefaultsDate(t *testing.T) {
	repo := &stubReceiptRepo{}
	uc := NewScannerUC(repo, nil, &stubImagesInfra{}, testLogger{})

	receipt, err := uc.SaveReceipt(context.Background(), &SaveReceiptReq{
		BusinessID: "biz-1",
		StoreName:  "Toko Maju",
	})

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), receipt.Date, time.Minute)
}

func TestSaveReceiptCleansUpOnDBError(t *testing.T) {
	infra := &stubImagesInfra{uploadedKey: "receipts/biz-1/abc.jpg"}
	uc := NewScannerUC(&stubReceiptRepo{err: errors.New("db down")}, nil, infra, testLogger{})

	_, err := uc.SaveReceipt(context.Background(), &SaveReceiptReq{
		BusinessID: "biz-1",
		Image:      &ReceiptImage{Data: []byte{1}, MimeType: "image/jpeg"},
	})

	require.Error(t, err)
	assert.Equal(t, []string{"receipts/biz-1/abc.jpg"}, infra.cleaned)
}

func TestSaveReceiptRejectsBadImage(t *testing.T) {
	uc := NewScannerUC(nil, nil, &stubImagesInfra{}, testLogger{})

	_, err := uc.SaveReceipt(context.Background(), &SaveReceiptReq{
		BusinessID: "biz-1",
		Image:      &ReceiptImage{Data: []byte{1}, MimeType: "text/plain"},
	})

	assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)
}
