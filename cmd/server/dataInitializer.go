package main

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"lingkod-server/services/assistant-api/internal/infrastructure/database/dbschema"
	"lingkod-server/services/assistant-api/internal/utils/platformerrors"
)

// DataInitializer seeds reference data on first boot so a fresh install can
// answer questions immediately.
type DataInitializer struct {
	db *gorm.DB
}

func (d *DataInitializer) Install(ctx context.Context) error {
	if err := d.seedFAQEntries(ctx); err != nil {
		return err
	}
	if err := d.seedDocumentTypes(ctx); err != nil {
		return err
	}
	return d.seedSpecialCategories(ctx)
}

func (d *DataInitializer) seedFAQEntries(ctx context.Context) error {
	var count int64
	if err := d.db.WithContext(ctx).Model(&dbschema.FAQEntry{}).Count(&count).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to count faq entries")
	}
	if count > 0 {
		return nil
	}

	entries := []dbschema.FAQEntry{
		{
			Question:     "What documents can I request?",
			Answer:       "You can request a barangay clearance, certificate of indigency, certificate of residency, and business permit. Fees vary per document.",
			Keywords:     dbschema.JSONStringSlice{"barangay clearance", "certificate", "documents", "fees"},
			DisplayOrder: 1,
		},
		{
			Question:     "What are the office hours?",
			Answer:       "The barangay hall is open Monday to Friday, 8:00 AM to 5:00 PM.",
			Keywords:     dbschema.JSONStringSlice{"office hours", "schedule", "open", "oras"},
			DisplayOrder: 2,
		},
		{
			Question:     "How do I file a blotter report?",
			Answer:       "Visit the barangay hall and approach the barangay secretary. Bring a valid ID and describe the incident; the report is recorded in person.",
			Keywords:     dbschema.JSONStringSlice{"blotter", "report", "incident", "complaint"},
			DisplayOrder: 3,
		},
	}

	if err := d.db.WithContext(ctx).Create(&entries).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to seed faq entries")
	}
	return nil
}

func (d *DataInitializer) seedDocumentTypes(ctx context.Context) error {
	var count int64
	if err := d.db.WithContext(ctx).Model(&dbschema.DocumentType{}).Count(&count).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to count document types")
	}
	if count > 0 {
		return nil
	}

	docs := []dbschema.DocumentType{
		{Title: "Barangay Clearance", Description: "General purpose clearance", Fee: decimal.NewFromInt(50)},
		{Title: "Certificate of Indigency", Description: "For medical, educational, or legal assistance", Fee: decimal.Zero},
		{Title: "Certificate of Residency", Description: "Proof of residence", Fee: decimal.NewFromInt(30)},
		{Title: "Business Permit", Description: "Annual permit for businesses operating in the barangay", Fee: decimal.NewFromInt(200)},
	}

	if err := d.db.WithContext(ctx).Create(&docs).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to seed document types")
	}
	return nil
}

func (d *DataInitializer) seedSpecialCategories(ctx context.Context) error {
	var count int64
	if err := d.db.WithContext(ctx).Model(&dbschema.SpecialCategory{}).Count(&count).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to count special categories")
	}
	if count > 0 {
		return nil
	}

	categories := []dbschema.SpecialCategory{
		{Name: "Senior Citizen", Description: "Residents aged 60 and above"},
		{Name: "PWD", Description: "Persons with disability"},
		{Name: "Solo Parent", Description: "Single parents raising dependents"},
	}

	if err := d.db.WithContext(ctx).Create(&categories).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to seed special categories")
	}
	return nil
}
