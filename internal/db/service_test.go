package db

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/giglog/giglog/internal/models"
	"github.com/giglog/giglog/internal/palette"
	"github.com/giglog/giglog/internal/validate"
)

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", value, err)
	}
	return d
}

func TestUserLifecycle(t *testing.T) {
	setupTestDB(t)

	user, err := CreateUser("Ada", "Lovelace", "Ada@Example.com", "correcthorse")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Errorf("email was not normalized: %q", user.Email)
	}
	if user.HashedPassword == "correcthorse" {
		t.Error("password stored in plaintext")
	}

	// Duplicate email rejected.
	if _, err := CreateUser("Ada", "Again", "ada@example.com", "correcthorse"); !errors.Is(err, validate.ErrValidation) {
		t.Errorf("duplicate email error = %v, want validation error", err)
	}

	// Short password rejected.
	if _, err := CreateUser("Bob", "Short", "bob@example.com", "short"); !errors.Is(err, validate.ErrValidation) {
		t.Errorf("short password error = %v, want validation error", err)
	}

	if _, err := AuthenticateUser("ada@example.com", "wrong-password"); !errors.Is(err, validate.ErrValidation) {
		t.Errorf("wrong password error = %v, want validation error", err)
	}

	authed, err := AuthenticateUser("ada@example.com", "correcthorse")
	if err != nil {
		t.Fatalf("AuthenticateUser: %v", err)
	}
	if authed.ID != user.ID {
		t.Errorf("authenticated wrong user: %s", authed.ID)
	}

	token, err := IssueToken(user.ID)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if len(token.Token) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(token.Token))
	}

	resolved, err := UserForToken(token.Token)
	if err != nil {
		t.Fatalf("UserForToken: %v", err)
	}
	if resolved.ID != user.ID {
		t.Errorf("token resolved to wrong user: %s", resolved.ID)
	}

	if err := RevokeToken(token.Token); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}
	if _, err := UserForToken(token.Token); !errors.Is(err, ErrNotFound) {
		t.Errorf("revoked token error = %v, want ErrNotFound", err)
	}
}

func TestCompanyLifecycle(t *testing.T) {
	setupTestDB(t)
	user, err := CreateUser("Test", "User", "companies@example.com", "password123")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	rate := mustDecimal(t, "15")
	company, err := CreateCompany(user.ID, "Initech", true, &rate)
	if err != nil {
		t.Fatalf("CreateCompany: %v", err)
	}

	// Withholdings without a rate rejected.
	if _, err := CreateCompany(user.ID, "Broken Co", true, nil); !errors.Is(err, validate.ErrValidation) {
		t.Errorf("missing rate error = %v, want validation error", err)
	}

	updated, err := UpdateCompany(user.ID, company.ID, "Initech LLC", false, nil)
	if err != nil {
		t.Fatalf("UpdateCompany: %v", err)
	}
	if updated.Name != "Initech LLC" || updated.RequiresTaxWithholdings {
		t.Errorf("update not applied: %+v", updated)
	}

	companies, err := ListCompanies(user.ID)
	if err != nil {
		t.Fatalf("ListCompanies: %v", err)
	}
	if len(companies) != 1 {
		t.Fatalf("ListCompanies returned %d companies", len(companies))
	}

	if err := DeleteCompany(user.ID, company.ID); err != nil {
		t.Fatalf("DeleteCompany: %v", err)
	}
	if _, err := CompanyByID(user.ID, company.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted company lookup error = %v, want ErrNotFound", err)
	}
}

func TestJobPaymentTypeRules(t *testing.T) {
	setupTestDB(t)
	user, err := CreateUser("Test", "User", "jobs@example.com", "password123")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	company, err := CreateCompany(user.ID, "Acme", false, nil)
	if err != nil {
		t.Fatalf("CreateCompany: %v", err)
	}

	rate := mustDecimal(t, "40.00")
	hourly, err := CreateJob(user.ID, JobInput{
		CompanyID:   company.ID,
		Title:       "Consulting",
		PaymentType: models.PaymentTypeHourly,
		HourlyRate:  &rate,
	})
	if err != nil {
		t.Fatalf("CreateJob hourly: %v", err)
	}

	// Hourly job cannot carry payout fields.
	payouts := 3
	amount := mustDecimal(t, "500.00")
	if _, err := CreateJob(user.ID, JobInput{
		CompanyID:       company.ID,
		Title:           "Bad Job",
		PaymentType:     models.PaymentTypeHourly,
		HourlyRate:      &rate,
		NumberOfPayouts: &payouts,
		PayoutAmount:    &amount,
	}); !errors.Is(err, validate.ErrValidation) {
		t.Errorf("hourly-with-payouts error = %v, want validation error", err)
	}

	// Switching to payouts swaps the field requirements.
	updated, err := UpdateJob(user.ID, hourly.ID, JobInput{
		CompanyID:       company.ID,
		Title:           "Consulting",
		PaymentType:     models.PaymentTypePayouts,
		NumberOfPayouts: &payouts,
		PayoutAmount:    &amount,
	})
	if err != nil {
		t.Fatalf("UpdateJob: %v", err)
	}
	if updated.PaymentType != models.PaymentTypePayouts {
		t.Errorf("payment type = %q", updated.PaymentType)
	}

	// Jobs cannot attach to another user's company.
	other, err := CreateUser("Other", "User", "other-jobs@example.com", "password123")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := CreateJob(other.ID, JobInput{
		CompanyID:   company.ID,
		Title:       "Sneaky",
		PaymentType: models.PaymentTypeHourly,
		HourlyRate:  &rate,
	}); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-user job error = %v, want ErrNotFound", err)
	}
}

func TestPaymentLifecycleAndCompanyTotals(t *testing.T) {
	setupTestDB(t)
	user, err := CreateUser("Test", "User", "payments@example.com", "password123")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	company, err := CreateCompany(user.ID, "Acme", false, nil)
	if err != nil {
		t.Fatalf("CreateCompany: %v", err)
	}

	first, err := CreatePayment(user.ID, PaymentInput{
		CompanyID:       company.ID,
		Total:           mustDecimal(t, "1250.50"),
		PayoutType:      models.PayoutTypeCheck,
		PaymentReceived: true,
	})
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}

	if _, err := CreatePayment(user.ID, PaymentInput{
		CompanyID:  company.ID,
		Total:      mustDecimal(t, "749.50"),
		PayoutType: models.PayoutTypeCash,
	}); err != nil {
		t.Fatalf("CreatePayment second: %v", err)
	}

	// Transfer flags on a non-transfer method rejected.
	if _, err := CreatePayment(user.ID, PaymentInput{
		CompanyID:         company.ID,
		Total:             mustDecimal(t, "10.00"),
		PayoutType:        models.PayoutTypeCash,
		TransferInitiated: true,
		PaymentReceived:   true,
	}); !errors.Is(err, validate.ErrValidation) {
		t.Errorf("cash transfer error = %v, want validation error", err)
	}

	total, err := CompanyPaymentTotal(user.ID, company.ID)
	if err != nil {
		t.Fatalf("CompanyPaymentTotal: %v", err)
	}
	if want := mustDecimal(t, "2000.00"); !total.Equal(want) {
		t.Errorf("payment total = %s, want %s", total, want)
	}

	if err := DeletePayment(user.ID, first.ID); err != nil {
		t.Fatalf("DeletePayment: %v", err)
	}
	payments, err := ListPayments(user.ID, company.ID)
	if err != nil {
		t.Fatalf("ListPayments: %v", err)
	}
	if len(payments) != 1 {
		t.Errorf("ListPayments returned %d payments after delete", len(payments))
	}
}

func TestPaletteLifecycle(t *testing.T) {
	setupTestDB(t)
	user, err := CreateUser("Test", "User", "palettes@example.com", "password123")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	seeds := palette.SeedColors{
		GreenSeedHex:   "#336699",
		RedSeedHex:     "#e65100",
		YellowSeedHex:  "#f9a825",
		BlueSeedHex:    "#1e88e5",
		MagentaSeedHex: "#8e24aa",
		CyanSeedHex:    "#00838f",
	}

	created, err := CreateCustomPalette(user.ID, "Dusk", seeds)
	if err != nil {
		t.Fatalf("CreateCustomPalette: %v", err)
	}
	if created.GenerationVersion != palette.GenerationVersion {
		t.Errorf("generation version = %d", created.GenerationVersion)
	}
	if created.GeneratedTokens == "" {
		t.Error("generated tokens were not persisted")
	}

	// Creating a palette activates it.
	active, err := ActivePalette(user.ID)
	if err != nil {
		t.Fatalf("ActivePalette: %v", err)
	}
	if active.ActivePaletteType != models.PaletteTypeCustom {
		t.Errorf("active palette type = %q", active.ActivePaletteType)
	}
	if active.ActiveCustomPaletteID == nil || *active.ActiveCustomPaletteID != created.ID {
		t.Errorf("active custom palette = %v", active.ActiveCustomPaletteID)
	}

	// Switching back to a preset clears the custom selection.
	preset := "tokyonight"
	if err := SetActivePalette(user.ID, models.PaletteTypePreset, &preset, nil); err != nil {
		t.Fatalf("SetActivePalette: %v", err)
	}
	active, err = ActivePalette(user.ID)
	if err != nil {
		t.Fatalf("ActivePalette: %v", err)
	}
	if active.ActivePaletteType != models.PaletteTypePreset || active.ActiveCustomPaletteID != nil {
		t.Errorf("active selection = %+v", active)
	}

	// Invalid seed colors rejected.
	bad := seeds
	bad.RedSeedHex = "e65100"
	if _, err := CreateCustomPalette(user.ID, "Broken", bad); !errors.Is(err, validate.ErrValidation) {
		t.Errorf("invalid seed error = %v, want validation error", err)
	}

	// Activating someone else's palette is not found.
	other, err := CreateUser("Other", "User", "other-palette@example.com", "password123")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if err := SetActivePalette(other.ID, models.PaletteTypeCustom, nil, &created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-user palette error = %v, want ErrNotFound", err)
	}
}
