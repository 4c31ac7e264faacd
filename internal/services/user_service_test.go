package services

import (
	"testing"

	"tally/internal/testutil"

	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("alice@example.com", "password123", "Alice")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected a user ID")
		}
		if user.Email != "alice@example.com" {
			t.Errorf("expected email alice@example.com, got %s", user.Email)
		}
		if user.Name != "Alice" {
			t.Errorf("expected name Alice, got %s", user.Name)
		}
		if !user.IsActive {
			t.Error("expected user to be active")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("dup@example.com", "password123", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("dup@example.com", "password456", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("empty_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "password123", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("empty_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("test@example.com", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("email_normalized_to_lowercase", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("Alice@EXAMPLE.COM", "password123", "")
		testutil.AssertNoError(t, err)

		if user.Email != "alice@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
	})
}

func TestGetUserByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUserWithEmail(t, db, "found@example.com")
		user, err := svc.GetUserByEmail("found@example.com")
		testutil.AssertNoError(t, err)

		if user.ID != created.ID {
			t.Errorf("expected user ID %s, got %s", created.ID, user.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByEmail("nonexistent@example.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("inactive_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user := testutil.CreateTestUserWithEmail(t, db, "inactive@example.com")
		db.Model(user).Update("is_active", false)

		_, err := svc.GetUserByEmail("inactive@example.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestGetUserByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUser(t, db)
		user, err := svc.GetUserByID(created.ID)
		testutil.AssertNoError(t, err)

		if user.Email != created.Email {
			t.Errorf("expected email %s, got %s", created.Email, user.Email)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByID("0190a0c0-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestVerifyPassword(t *testing.T) {
	t.Run("correct", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		// Fixture uses "password123" with bcrypt.MinCost
		user := testutil.CreateTestUser(t, db)
		if !svc.VerifyPassword(user, "password123") {
			t.Error("expected password verification to succeed")
		}
	})

	t.Run("incorrect", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user := testutil.CreateTestUser(t, db)
		if svc.VerifyPassword(user, "wrongpassword") {
			t.Error("expected password verification to fail")
		}
	})
}

func TestAttemptLogin(t *testing.T) {
	t.Run("success_records_login", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		// Create user via service so password is hashed with DefaultCost
		_, err := svc.CreateUser("login@example.com", "password123", "")
		testutil.AssertNoError(t, err)

		user, err := svc.AttemptLogin("Login@Example.com", "password123")
		testutil.AssertNoError(t, err)

		if user.LastLoginAt == nil {
			t.Error("expected LastLoginAt to be set after successful login")
		}
		stored, _ := svc.GetUserByID(user.ID)
		if stored.LastLoginAt == nil {
			t.Error("expected LastLoginAt to be stored")
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("fail@example.com", "password123", "")
		testutil.AssertNoError(t, err)

		_, err = svc.AttemptLogin("fail@example.com", "wrongpassword")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("inactive_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user := testutil.CreateTestUserWithEmail(t, db, "inactive@example.com")
		db.Model(user).Update("is_active", false)

		_, err := svc.AttemptLogin("inactive@example.com", "password123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("nonexistent_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.AttemptLogin("nobody@example.com", "password123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}

func TestStoreAndGetRefreshTokenHash(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user := testutil.CreateTestUser(t, db)

	hash := "abcdef1234567890abcdef1234567890abcdef1234567890abcdef1234567890"
	err := svc.StoreRefreshTokenHash(user.ID, hash)
	testutil.AssertNoError(t, err)

	got, err := svc.GetRefreshTokenHash(user.ID)
	testutil.AssertNoError(t, err)

	if got != hash {
		t.Errorf("expected hash %s, got %s", hash, got)
	}

	err = svc.StoreRefreshTokenHash("0190a0c0-0000-7000-8000-000000000000", hash)
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}

func TestCreateUser_password_is_hashed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user, err := svc.CreateUser("hash@example.com", "mypassword", "")
	testutil.AssertNoError(t, err)

	// Password should be bcrypt hash, not plaintext
	if user.Password == "mypassword" {
		t.Error("password should be hashed, not stored as plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("mypassword")); err != nil {
		t.Error("password hash should be valid bcrypt")
	}
}
