package repository

import (
	"Beacon/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CustomerAccountRepo interface {
	GetCustomer(ctx context.Context, customerID uint64) (*model.Customer, error)
	ListAccountIDs(ctx context.Context, customerID uint64) ([]string, error)
}

type customerAccountRepoImpl struct {
	db *gorm.DB
}

func NewCustomerAccountRepo(db *gorm.DB) CustomerAccountRepo {
	return &customerAccountRepoImpl{db: db}
}

func (s *customerAccountRepoImpl) GetCustomer(ctx context.Context, customerID uint64) (*model.Customer, error) {
	var customer model.Customer
	err := s.db.WithContext(ctx).
		Where("id = ?", customerID).
		First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (s *customerAccountRepoImpl) ListAccountIDs(ctx context.Context, customerID uint64) ([]string, error) {
	ids := make([]string, 0)
	result := s.db.WithContext(ctx).
		Model(&model.CustomerAccount{}).
		Where("customer_id = ?", customerID).
		Pluck("account_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}
