package datastore

import "time"

// Table layout used to bootstrap local SQLite databases. The managed Postgres
// datastore owns its own schema.

type employeeRow struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Email     *string   `gorm:"column:email"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (employeeRow) TableName() string { return "employees" }

type workcenterRow struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Code      *string   `gorm:"column:code"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (workcenterRow) TableName() string { return "workcenters" }

type partNumberRow struct {
	ID          string    `gorm:"column:id;primaryKey"`
	PartNumber  string    `gorm:"column:part_number;not null"`
	Description *string   `gorm:"column:description"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (partNumberRow) TableName() string { return "part_numbers" }

type customerRow struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Code      *string   `gorm:"column:code"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (customerRow) TableName() string { return "customers" }

type inspectionItemRow struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Description *string   `gorm:"column:description"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (inspectionItemRow) TableName() string { return "inspection_items" }

type dmtRecordRow struct {
	ID                      string    `gorm:"column:id;primaryKey"`
	WorkcenterID            *string   `gorm:"column:workcenter_id;index"`
	PartNumberID            *string   `gorm:"column:part_number_id;index"`
	EmployeeID              *string   `gorm:"column:employee_id;index"`
	CustomerID              *string   `gorm:"column:customer_id;index"`
	InspectionItemID        *string   `gorm:"column:inspection_item_id;index"`
	PreparedByID            *string   `gorm:"column:prepared_by_id"`
	DispositionApprovedByID *string   `gorm:"column:disposition_approved_by_id"`
	Date                    *string   `gorm:"column:date"`
	DMTClosed               bool      `gorm:"column:dmt_closed;not null;default:false"`
	IsActive                bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt               time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (dmtRecordRow) TableName() string { return "dmt_records" }
