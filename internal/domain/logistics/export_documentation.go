package logistics

import (
	"time"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DispatchStatus is the courier state of an export document set
type DispatchStatus string

const (
	DispatchPending DispatchStatus = "pending"
	DispatchSent    DispatchStatus = "sent"
)

// IsValid returns true if the status is a known value
func (s DispatchStatus) IsValid() bool {
	return s == DispatchPending || s == DispatchSent
}

// ExportDocumentation is the export document checklist for a shipment.
// Exactly one document set exists per shipment.
type ExportDocumentation struct {
	shared.BaseAggregateRoot
	ShipmentID           uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	CustomsDeclaration   bool           `gorm:"not null;default:false"`
	DispatchGuide        bool           `gorm:"not null;default:false"`
	PackingList          bool           `gorm:"not null;default:false"`
	CertificateOfOrigin  bool           `gorm:"not null;default:false"`
	OtherCertificates    string         `gorm:"type:text"`
	EstimatedArrivalDate time.Time      `gorm:"type:date;not null"`
	CourierDeadline      time.Time      `gorm:"type:date;not null"`
	DispatchStatus       DispatchStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
}

// TableName returns the table name for GORM
func (ExportDocumentation) TableName() string {
	return "export_documentations"
}

// NewExportDocumentation creates an empty document checklist for a shipment
func NewExportDocumentation(shipmentID uuid.UUID, estimatedArrivalDate, courierDeadline time.Time, otherCertificates string) (*ExportDocumentation, error) {
	if shipmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SHIPMENT", "Shipment ID cannot be empty")
	}
	if estimatedArrivalDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Estimated arrival date is required")
	}
	if courierDeadline.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Courier deadline is required")
	}
	return &ExportDocumentation{
		BaseAggregateRoot:    shared.NewBaseAggregateRoot(),
		ShipmentID:           shipmentID,
		EstimatedArrivalDate: estimatedArrivalDate,
		CourierDeadline:      courierDeadline,
		OtherCertificates:    otherCertificates,
		DispatchStatus:       DispatchPending,
	}, nil
}

// UpdateChecklist sets the collected document flags and free-form certificates
func (d *ExportDocumentation) UpdateChecklist(customsDeclaration, dispatchGuide, packingList, certificateOfOrigin bool, otherCertificates string) {
	d.CustomsDeclaration = customsDeclaration
	d.DispatchGuide = dispatchGuide
	d.PackingList = packingList
	d.CertificateOfOrigin = certificateOfOrigin
	d.OtherCertificates = otherCertificates
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
}

// UpdateDates changes the arrival estimate and courier deadline
func (d *ExportDocumentation) UpdateDates(estimatedArrivalDate, courierDeadline time.Time) error {
	if estimatedArrivalDate.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Estimated arrival date is required")
	}
	if courierDeadline.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Courier deadline is required")
	}
	d.EstimatedArrivalDate = estimatedArrivalDate
	d.CourierDeadline = courierDeadline
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// IsComplete returns true when every required document has been collected
func (d *ExportDocumentation) IsComplete() bool {
	return d.CustomsDeclaration && d.DispatchGuide && d.PackingList && d.CertificateOfOrigin
}

// MarkSent records that the document set went out by courier. Sending an
// incomplete set is rejected.
func (d *ExportDocumentation) MarkSent() error {
	if d.DispatchStatus == DispatchSent {
		return shared.NewDomainError("INVALID_STATE", "Documentation has already been sent")
	}
	if !d.IsComplete() {
		return shared.NewDomainError("INVALID_STATE", "Documentation is incomplete and cannot be sent")
	}
	d.DispatchStatus = DispatchSent
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}
