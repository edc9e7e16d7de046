package model

import "time"

// CustomerAccount 客户与发布平台账号的关联表，本服务只读
type CustomerAccount struct {
	ID         uint64    `gorm:"primaryKey"`
	CustomerID uint64    `gorm:"not null;index:idx_customer_account,unique"`
	AccountID  string    `gorm:"type:varchar(64);not null;index:idx_customer_account,unique"`
	Platform   string    `gorm:"type:varchar(32);not null"`
	CreatedAt  time.Time
}

func (CustomerAccount) TableName() string {
	return "customer_accounts"
}
