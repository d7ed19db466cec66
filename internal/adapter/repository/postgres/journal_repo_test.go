package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/chisomo/hospledger/internal/domain"
)

func TestMapLineInsertErrorForeignKeyViolation(t *testing.T) {
	err := mapLineInsertError(&pgconn.PgError{Code: pgErrForeignKeyViolation}, 1, "9999")

	var invalidAccount *domain.InvalidAccountError
	if !errors.As(err, &invalidAccount) {
		t.Fatalf("expected InvalidAccountError, got %v", err)
	}
	if invalidAccount.Line != 1 {
		t.Errorf("line = %d, want 1", invalidAccount.Line)
	}
	if invalidAccount.AccountCode != "9999" {
		t.Errorf("account code = %q, want 9999", invalidAccount.AccountCode)
	}
}

func TestMapLineInsertErrorPassesThroughOtherErrors(t *testing.T) {
	serialization := &pgconn.PgError{Code: pgErrSerializationFailure}
	if got := mapLineInsertError(serialization, 0, "1000"); got != serialization {
		t.Fatalf("expected serialization failure unchanged, got %v", got)
	}

	plain := errors.New("connection reset")
	if got := mapLineInsertError(plain, 0, "1000"); got != plain {
		t.Fatalf("expected plain error unchanged, got %v", got)
	}
}

func TestDecimalToNumeric(t *testing.T) {
	for _, raw := range []string{"0", "0.01", "1250.75", "-42.50", "999999999999.99"} {
		d := decimal.RequireFromString(raw)

		n, err := decimalToNumeric(d)
		if err != nil {
			t.Fatalf("decimalToNumeric(%s): %v", raw, err)
		}
		if !n.Valid {
			t.Fatalf("decimalToNumeric(%s): expected valid numeric", raw)
		}
		if got := numericToDecimal(n); !got.Equal(d) {
			t.Errorf("round trip of %s gave %s", raw, got)
		}
	}
}
