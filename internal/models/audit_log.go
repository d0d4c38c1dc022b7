package models

import "time"

type AuditAction string

const (
	AuditActionUpload    AuditAction = "upload"
	AuditActionReset     AuditAction = "reset"
	AuditActionReconcile AuditAction = "reconcile"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Hangi entity? (ör: "stock", "menu", "sales", "order")
	EntityType string `gorm:"size:50;index" json:"entity_type"`

	// İşlem tipi: upload/reset/reconcile
	Action AuditAction `gorm:"size:20" json:"action"`

	// Opsiyonel açıklama (küçük bir özet)
	Description string `gorm:"size:255" json:"description"`

	// Önceki ve sonraki hal (JSON)
	BeforeData string `gorm:"type:text" json:"before_data"`
	AfterData  string `gorm:"type:text" json:"after_data"`
}
