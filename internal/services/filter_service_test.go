package services

import (
	"testing"

	"spreadscan/internal/models"
	"spreadscan/internal/pagination"
	"spreadscan/internal/scanner"
	"spreadscan/internal/testutil"
)

func TestCreateFilter(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFilterService(db)
		user := testutil.CreateTestUser(t, db)

		cfg := scanner.DefaultFilterConfig()
		cfg.SpreadType = models.SpreadTypeIronCondor
		cfg.MinProbability = 70
		cfg.SymbolQuery = "goog"

		filter, err := svc.CreateFilter(user.ID, "  Condors  ", cfg)
		testutil.AssertNoError(t, err)

		if filter.Name != "Condors" {
			t.Errorf("expected trimmed name, got %q", filter.Name)
		}
		if got := FilterConfigOf(filter); got != cfg {
			t.Errorf("expected stored config %+v, got %+v", cfg, got)
		}
	})

	t.Run("zero_thresholds_round_trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFilterService(db)
		user := testutil.CreateTestUser(t, db)

		cfg := scanner.DefaultFilterConfig()
		cfg.MinProbability = 0
		cfg.MaxDaysToExpiration = 0

		created, err := svc.CreateFilter(user.ID, "Expiring Today", cfg)
		testutil.AssertNoError(t, err)

		reloaded, err := svc.GetFilter(user.ID, created.ID)
		testutil.AssertNoError(t, err)
		if got := FilterConfigOf(reloaded); got != cfg {
			t.Errorf("expected reloaded config %+v, got %+v", cfg, got)
		}
	})

	t.Run("invalid_config", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFilterService(db)
		user := testutil.CreateTestUser(t, db)

		cfg := scanner.DefaultFilterConfig()
		cfg.MinProbability = 120
		_, err := svc.CreateFilter(user.ID, "Too High", cfg)
		testutil.AssertAppError(t, err, "INVALID_FILTER")
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFilterService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateFilter(user.ID, " ", scanner.DefaultFilterConfig())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("duplicate_name_per_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFilterService(db)
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)

		_, err := svc.CreateFilter(alice.ID, "Default", scanner.DefaultFilterConfig())
		testutil.AssertNoError(t, err)

		_, err = svc.CreateFilter(alice.ID, "Default", scanner.DefaultFilterConfig())
		testutil.AssertAppError(t, err, "DUPLICATE_FILTER")

		_, err = svc.CreateFilter(bob.ID, "Default", scanner.DefaultFilterConfig())
		testutil.AssertNoError(t, err)
	})
}

func TestListFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewFilterService(db)
	alice := testutil.CreateTestUser(t, db)
	bob := testutil.CreateTestUser(t, db)

	for _, name := range []string{"Zeta", "Alpha"} {
		_, err := svc.CreateFilter(alice.ID, name, scanner.DefaultFilterConfig())
		testutil.AssertNoError(t, err)
	}
	testutil.CreateTestSavedFilter(t, db, bob.ID)

	result, err := svc.ListFilters(alice.ID, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if result.TotalItems != 2 {
		t.Fatalf("expected 2 filters, got %d", result.TotalItems)
	}
	if result.Data[0].Name != "Alpha" || result.Data[1].Name != "Zeta" {
		t.Errorf("expected name order, got %s, %s", result.Data[0].Name, result.Data[1].Name)
	}
}

func TestGetFilter(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFilterService(db)
		user := testutil.CreateTestUser(t, db)
		saved := testutil.CreateTestSavedFilter(t, db, user.ID)

		filter, err := svc.GetFilter(user.ID, saved.ID)
		testutil.AssertNoError(t, err)
		if got := FilterConfigOf(filter); got != scanner.DefaultFilterConfig() {
			t.Errorf("expected default config, got %+v", got)
		}
	})

	t.Run("other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFilterService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		saved := testutil.CreateTestSavedFilter(t, db, owner.ID)

		_, err := svc.GetFilter(other.ID, saved.ID)
		testutil.AssertAppError(t, err, "FILTER_NOT_FOUND")
	})
}

func TestDeleteFilter(t *testing.T) {
	t.Run("frees_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFilterService(db)
		user := testutil.CreateTestUser(t, db)

		filter, err := svc.CreateFilter(user.ID, "Short Dated", scanner.DefaultFilterConfig())
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.DeleteFilter(user.ID, filter.ID))

		_, err = svc.GetFilter(user.ID, filter.ID)
		testutil.AssertAppError(t, err, "FILTER_NOT_FOUND")

		_, err = svc.CreateFilter(user.ID, "Short Dated", scanner.DefaultFilterConfig())
		testutil.AssertNoError(t, err)
	})

	t.Run("other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFilterService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		saved := testutil.CreateTestSavedFilter(t, db, owner.ID)

		err := svc.DeleteFilter(other.ID, saved.ID)
		testutil.AssertAppError(t, err, "FILTER_NOT_FOUND")
	})
}
