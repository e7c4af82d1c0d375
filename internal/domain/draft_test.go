package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft_IndexedListOperations(t *testing.T) {
	var d ProviderProfileDraft

	d.AddCertification(Certification{Name: "CPDT-KA", Organization: "CCPDT", Year: 2019})
	d.AddCertification(Certification{Name: "Fear Free", Organization: "FFP", Year: 2021})
	d.AddCertification(Certification{Name: "AKC CGC", Organization: "AKC", Year: 2022})

	require.NoError(t, d.UpdateCertification(1, Certification{Name: "Fear Free Elite", Organization: "FFP", Year: 2023}))
	assert.Equal(t, "Fear Free Elite", d.Certifications[1].Name)

	require.NoError(t, d.RemoveCertification(0))
	require.Len(t, d.Certifications, 2)
	assert.Equal(t, "Fear Free Elite", d.Certifications[0].Name)
	assert.Equal(t, "AKC CGC", d.Certifications[1].Name)

	require.ErrorIs(t, d.RemoveCertification(5), ErrIndexOutOfRange)
	require.ErrorIs(t, d.UpdateCertification(-1, Certification{}), ErrIndexOutOfRange)

	d.AddPackage(PackageOptionInput{Name: "Puppy basics", Sessions: 4, Price: "200"})
	require.NoError(t, d.UpdatePackage(0, PackageOptionInput{Name: "Puppy basics", Sessions: 6, Price: "280"}))
	assert.Equal(t, 6, d.Packages[0].Sessions)
	require.NoError(t, d.RemovePackage(0))
	assert.Empty(t, d.Packages)
	require.ErrorIs(t, d.RemovePackage(0), ErrIndexOutOfRange)

	d.AddServiceMenuItem(ServiceMenuItemInput{Name: "Nail trim", Price: "15"})
	require.ErrorIs(t, d.UpdateServiceMenuItem(1, ServiceMenuItemInput{}), ErrIndexOutOfRange)
	require.NoError(t, d.RemoveServiceMenuItem(0))
	assert.Empty(t, d.ServiceMenu)
}

func TestDraft_FosterMonthlyDefault(t *testing.T) {
	d := ProviderProfileDraft{DailyRate: "25"}
	foster := d.fosterDetails()
	assert.True(t, foster.MonthlyRate.Equal(MustParseAmount("750")))

	d.MonthlyRate = "600"
	foster = d.fosterDetails()
	assert.True(t, foster.MonthlyRate.Equal(MustParseAmount("600")))

	d = ProviderProfileDraft{}
	foster = d.fosterDetails()
	assert.True(t, foster.DailyRate.IsZero())
	assert.True(t, foster.MonthlyRate.IsZero())
}

func TestDraft_BlankRowsSkipped(t *testing.T) {
	d := ProviderProfileDraft{
		Certifications: []Certification{{Name: ""}, {Name: "CPDT-KA"}},
		Packages:       []PackageOptionInput{{Name: "Basics", Sessions: 4, Price: "bad"}, {}},
		ServiceMenu:    []ServiceMenuItemInput{{}, {Name: "Bath", Price: "30"}},
	}

	trainer := d.trainerDetails()
	require.Len(t, trainer.Certifications, 1)
	require.Len(t, trainer.Packages, 1)
	assert.True(t, trainer.Packages[0].Price.IsZero())

	groomer := d.groomerDetails()
	require.Len(t, groomer.ServiceMenu, 1)
	assert.Equal(t, "30.00", groomer.ServiceMenu[0].Price.String())
}

func TestDraft_DecodeRatesAsNumberOrString(t *testing.T) {
	var d ProviderProfileDraft
	require.NoError(t, json.Unmarshal([]byte(`{
		"daily_rate": 25,
		"monthly_rate": "650.50",
		"base_price": 40.5,
		"walking_rate": null,
		"drop_in_rate": "n/a",
		"packages": [{"name": "Basics", "sessions": 4, "price": 199.99}],
		"service_menu": [{"name": "Bath", "price": "30"}]
	}`), &d))

	assert.Equal(t, "25.00", d.DailyRate.Amount().String())
	assert.Equal(t, "650.50", d.MonthlyRate.Amount().String())
	assert.Equal(t, "40.50", d.BasePrice.Amount().String())

	_, ok := d.WalkingRate.Parse()
	assert.False(t, ok)
	assert.True(t, d.DropInRate.Amount().IsZero())

	assert.Equal(t, "199.99", d.Packages[0].Price.Amount().String())
	assert.Equal(t, "30.00", d.ServiceMenu[0].Price.Amount().String())
}

func TestDraft_NumericDailyRateFeedsMonthlyDefault(t *testing.T) {
	var d ProviderProfileDraft
	require.NoError(t, json.Unmarshal([]byte(`{"daily_rate": 20}`), &d))

	foster := d.fosterDetails()
	assert.Equal(t, "20.00", foster.DailyRate.String())
	assert.Equal(t, "600.00", foster.MonthlyRate.String())
}
