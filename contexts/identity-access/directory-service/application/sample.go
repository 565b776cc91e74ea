package application

import (
	"fmt"

	"foodtrace/contexts/identity-access/directory-service/domain/entities"
	"foodtrace/internal/shared/roles"
)

type sampleProfile struct {
	role         roles.Role
	count        int
	emailDomain  string
	phoneBase    int
	business     string
	businessType string
	licensePref  string
	state        string
	cityPref     string
	zipPrefix    string
}

var sampleProfiles = []sampleProfile{
	{roles.Farmer, 10, "farm.com", 1000, "Green Valley Farm", "organic-farm", "FARM", "Selangor", "Farm City", "4"},
	{roles.Processor, 5, "processing.com", 2000, "Food Processing Plant", "food-processing", "PROC", "Johor", "Processing City", "8"},
	{roles.Retailer, 8, "retail.com", 3000, "Fresh Market", "supermarket", "RET", "Kuala Lumpur", "Retail City", "5"},
	{roles.Consumer, 15, "email.com", 4000, "", "", "", "Penang", "Consumer City", "1"},
}

// SampleParticipants generates the deterministic 38-record demo set: 10
// farmers, 5 processors, 8 retailers, 15 consumers. Wallet addresses are
// fixed so repeated loads replace rather than multiply records.
func SampleParticipants() []entities.ParticipantRecord {
	var records []entities.ParticipantRecord
	for ordinal, profile := range sampleProfiles {
		for i := 1; i <= profile.count; i++ {
			record := entities.ParticipantRecord{
				WalletAddress: sampleWallet(ordinal+1, i),
				Role:          profile.role,
				Name:          fmt.Sprintf("%s %d", profile.role.Title(), i),
				Email:         fmt.Sprintf("%s%d@%s", profile.role, i, profile.emailDomain),
				Phone:         fmt.Sprintf("+1-555-%d", profile.phoneBase+i),
				Location: entities.Location{
					Country: "Malaysia",
					State:   profile.state,
					City:    fmt.Sprintf("%s %d", profile.cityPref, i),
					ZipCode: fmt.Sprintf("%s%04d", profile.zipPrefix, i),
				},
			}
			if profile.business != "" {
				record.BusinessName = fmt.Sprintf("%s %d", profile.business, i)
				record.BusinessType = profile.businessType
				record.LicenseNumber = fmt.Sprintf("%s-2024-%03d", profile.licensePref, i)
			}
			records = append(records, record)
		}
	}
	return records
}

func sampleWallet(roleOrdinal, index int) string {
	return fmt.Sprintf("0x%036d%02d%02d", 0, roleOrdinal, index)
}
