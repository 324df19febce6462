package service

import (
	"context"
	"fmt"

	"ticketing_admin/apperror"
	"ticketing_admin/notifier"
)

const msgNotFound = "tidak ditemukan"

func publisherOrNop(pub notifier.Publisher) notifier.Publisher {
	if pub == nil {
		return notifier.Nop{}
	}
	return pub
}

// requireExists thêm lỗi field vào ve nếu dòng được tham chiếu không tồn tại
func requireExists(ctx context.Context, ve *apperror.ValidationError, field string, id uint, exists func(context.Context, uint) (bool, error)) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check %s: %w", field, err)
	}
	if !ok {
		ve.Add(field, msgNotFound)
	}
	return nil
}

func failIfAny(ve *apperror.ValidationError) error {
	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}

// inUse trả apperror.ErrInUse nếu còn event tham chiếu tới dòng này
func inUse(ctx context.Context, count func(context.Context, uint) (int64, error), id uint) error {
	n, err := count(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%d event(s): %w", n, apperror.ErrInUse)
	}
	return nil
}
