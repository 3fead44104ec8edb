package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Abdouxone/KFP/models"
	"github.com/Abdouxone/KFP/repository"
)

func TestCreateOrder_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	order := &models.Order{
		ID:                uuid.New(),
		UserID:            "user-1",
		ShippingAddressID: uuid.New(),
		OrderStatus:       models.OrderStatusPending,
		PaymentStatus:     models.PaymentStatusPending,
		Total:             450,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(order.ID))
	mock.ExpectCommit()

	err := repo.CreateOrder(context.Background(), order)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderTotal_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	orderID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateOrderTotal(context.Background(), orderID, 450)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTransaction_CommitsOnSuccess(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	orderID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.InTransaction(context.Background(), func(txRepo repository.OrderRepository) error {
		return txRepo.UpdateOrderTotal(context.Background(), orderID, 99)
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTransaction_RollsBackOnError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := repo.InTransaction(context.Background(), func(repository.OrderRepository) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDAndUserID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormOrderRepository(gormDB)

	orderID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WithArgs(orderID, "user-2").
		WillReturnRows(sqlmock.NewRows([]string{}))

	order, err := repo.FindByIDAndUserID(context.Background(), orderID, "user-2")
	assert.Error(t, err)
	assert.Nil(t, order)
}
