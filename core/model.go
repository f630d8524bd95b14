package core

import (
	"time"
)

// User is a platform account. Role drives every permission decision.
type User struct {
	ID       string    `json:"id" gorm:"primaryKey;type:text"`
	ClientID string    `json:"clientId" gorm:"type:text;index"`
	Role     string    `json:"role" gorm:"type:text"`
	Status   string    `json:"status" gorm:"type:text;default:'active'"`
	CDate    time.Time `json:"cdate" gorm:"autoCreateTime"`
	MDate    time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

// Property is a managed unit. CreatedBy is the ownership field the
// mine-scope classifier reads.
type Property struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text"`
	ClientID  string    `json:"clientId" gorm:"type:text;index"`
	CreatedBy string    `json:"createdBy" gorm:"type:text;index"`
	Address   string    `json:"address" gorm:"type:text"`
	CDate     time.Time `json:"cdate" gorm:"autoCreateTime"`
}

// WorkOrder is a maintenance request. Unclaimed orders form the
// available-scope queue; claimed orders carry assignments.
type WorkOrder struct {
	ID         string    `json:"id" gorm:"primaryKey;type:text"`
	ClientID   string    `json:"clientId" gorm:"type:text;index"`
	PropertyID string    `json:"propertyId" gorm:"type:text;index"`
	CreatedBy  string    `json:"createdBy" gorm:"type:text;index"`
	Title      string    `json:"title" gorm:"type:text"`
	Claimed    bool      `json:"claimed" gorm:"default:false"`
	CDate      time.Time `json:"cdate" gorm:"autoCreateTime"`
}

// WorkOrderAssignment links a vendor or staff user to a work order.
type WorkOrderAssignment struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	WorkOrderID string    `json:"workOrderId" gorm:"type:text;index:idx_workorder_user"`
	UserID      string    `json:"userId" gorm:"type:text;index:idx_workorder_user"`
	CDate       time.Time `json:"cdate" gorm:"autoCreateTime"`
}
