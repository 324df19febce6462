package notifier

import (
	"context"
	"errors"
	"testing"

	"ticketing_admin/constants"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestPublish_SendsChangeEvent(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectPublish(constants.CHANNEL_PERUBAHAN, `{"entity":"lokasi","action":"created","id":4}`).SetVal(1)

	NewRedisNotifier(db).Publish(context.Background(), constants.ENTITY_LOKASI, constants.ACTION_CREATED, 4)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublish_ErrorIsSwallowed(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectPublish(constants.CHANNEL_PERUBAHAN, `{"entity":"order","action":"deleted","id":9}`).
		SetErr(errors.New("connection refused"))

	assert.NotPanics(t, func() {
		NewRedisNotifier(db).Publish(context.Background(), constants.ENTITY_ORDER, constants.ACTION_DELETED, 9)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectPing().SetErr(errors.New("down"))

	err := NewRedisNotifier(db).Ping(context.Background())

	assert.ErrorContains(t, err, "redis ping")
	assert.NoError(t, mock.ExpectationsWereMet())
}
