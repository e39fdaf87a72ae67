package repository

import (
	"context"

	"github.com/skillsync/skillsync/internal/models"
	"github.com/skillsync/skillsync/internal/storage"
)

// SwapRepository типизированный доступ к коллекции обменов.
type SwapRepository struct {
	kv storage.KV
}

// NewSwapRepository создает репозиторий поверх указанного хранилища.
func NewSwapRepository(kv storage.KV) *SwapRepository {
	return &SwapRepository{kv: kv}
}

// All возвращает все обмены в порядке добавления.
func (r *SwapRepository) All(ctx context.Context) ([]models.Swap, error) {
	return readCollection[models.Swap](ctx, r.kv, SwapsKey)
}

// GetByID возвращает обмен по идентификатору.
func (r *SwapRepository) GetByID(ctx context.Context, id string) (*models.Swap, error) {
	swaps, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range swaps {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

// ListByUser возвращает обмены, где пользователь — инициатор или получатель,
// в порядке добавления и без фильтрации по статусу.
func (r *SwapRepository) ListByUser(ctx context.Context, userID string) ([]models.Swap, error) {
	swaps, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	var result []models.Swap
	for _, s := range swaps {
		if s.RequesterID == userID || s.ReceiverID == userID {
			result = append(result, s)
		}
	}
	return result, nil
}

// Append добавляет новый обмен в конец коллекции.
func (r *SwapRepository) Append(ctx context.Context, swap models.Swap) error {
	swaps, err := r.All(ctx)
	if err != nil {
		return err
	}
	swaps = append(swaps, swap)
	return writeCollection(ctx, r.kv, SwapsKey, swaps)
}

// Update заменяет запись обмена с тем же идентификатором целиком.
func (r *SwapRepository) Update(ctx context.Context, swap models.Swap) error {
	swaps, err := r.All(ctx)
	if err != nil {
		return err
	}
	for i, s := range swaps {
		if s.ID == swap.ID {
			swaps[i] = swap
			return writeCollection(ctx, r.kv, SwapsKey, swaps)
		}
	}
	return ErrNotFound
}
