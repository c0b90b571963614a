package session

import (
	"errors"
	"reflect"
	"testing"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/dataset"
)

func TestParseCleanStrategy(t *testing.T) {
	for _, name := range []string{"drop_rows", "drop_cols", "drop_specific", "fill_mean", "fill_zero", "fill_mode"} {
		cs, err := ParseCleanStrategy(name)
		if err != nil {
			t.Errorf("ParseCleanStrategy(%q) failed: %v", name, err)
		}
		if cs.String() != name {
			t.Errorf("round-trip mismatch: %q -> %q", name, cs.String())
		}
	}
	if _, err := ParseCleanStrategy("bogus"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestSession_CleanMissing_DropRows(t *testing.T) {
	s := testSession(
		&dataset.Column{Name: "a", Type: dataset.TypeInt, Values: []any{int64(1), nil, int64(3)}},
		&dataset.Column{Name: "b", Type: dataset.TypeText, Values: []any{"x", "y", "z"}},
	)

	res, err := s.CleanMissing(DropRows, "")
	if err != nil {
		t.Fatalf("drop_rows failed: %v", err)
	}
	if res.Affected != 1 {
		t.Errorf("expected 1 row removed, got %d", res.Affected)
	}
	if s.ds.Rows() != 2 {
		t.Errorf("expected 2 rows left, got %d", s.ds.Rows())
	}
}

func TestSession_CleanMissing_DropRows_NoMissing(t *testing.T) {
	s := testSession(
		&dataset.Column{Name: "a", Type: dataset.TypeInt, Values: []any{int64(1), int64(2)}},
	)

	res, err := s.CleanMissing(DropRows, "")
	if err != nil {
		t.Fatalf("drop_rows failed: %v", err)
	}
	if res.Affected != 0 || s.ds.Rows() != 2 {
		t.Errorf("expected no-op, removed=%d rows=%d", res.Affected, s.ds.Rows())
	}
}

func TestSession_CleanMissing_DropColumns(t *testing.T) {
	s := testSession(
		&dataset.Column{Name: "a", Type: dataset.TypeInt, Values: []any{int64(1), nil}},
		&dataset.Column{Name: "b", Type: dataset.TypeText, Values: []any{"x", "y"}},
	)

	res, err := s.CleanMissing(DropColumns, "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Affected != 1 || s.ds.Cols() != 1 {
		t.Errorf("expected 1 column removed, got %d (cols=%d)", res.Affected, s.ds.Cols())
	}
}

func TestSession_CleanMissing_DropSpecific(t *testing.T) {
	s := gradesSession()

	if _, err := s.CleanMissing(DropSpecific, "grade"); err != nil {
		t.Fatal(err)
	}
	if s.ds.HasColumn("grade") {
		t.Error("column not dropped")
	}

	if _, err := s.CleanMissing(DropSpecific, "missing"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestSession_CleanMissing_FillMean(t *testing.T) {
	s := testSession(
		&dataset.Column{Name: "age", Type: dataset.TypeInt, Values: []any{int64(25), nil, int64(31), nil, int64(40)}},
	)

	res, err := s.CleanMissing(FillMean, "age")
	if err != nil {
		t.Fatalf("fill_mean failed: %v", err)
	}
	if res.Affected != 2 {
		t.Errorf("expected 2 cells filled, got %d", res.Affected)
	}

	col, _ := s.ds.Column("age")
	want := []any{float64(25), float64(32), float64(31), float64(32), float64(40)}
	if !reflect.DeepEqual(col.Values, want) {
		t.Errorf("expected %v, got %v", want, col.Values)
	}
	if col.Type != dataset.TypeFloat {
		t.Errorf("mean fill must promote int columns to float, got %v", col.Type)
	}
}

func TestSession_CleanMissing_FillMean_NonNumeric(t *testing.T) {
	s := gradesSession()
	if _, err := s.CleanMissing(FillMean, "name"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestSession_CleanMissing_FillZero_AllNumeric(t *testing.T) {
	s := testSession(
		&dataset.Column{Name: "a", Type: dataset.TypeInt, Values: []any{int64(1), nil}},
		&dataset.Column{Name: "b", Type: dataset.TypeFloat, Values: []any{nil, 2.5}},
		&dataset.Column{Name: "c", Type: dataset.TypeText, Values: []any{nil, "x"}},
	)

	res, err := s.CleanMissing(FillZero, TargetAllNumeric)
	if err != nil {
		t.Fatal(err)
	}
	if res.Affected != 2 {
		t.Errorf("expected 2 cells filled, got %d", res.Affected)
	}

	a, _ := s.ds.Column("a")
	if a.Values[1] != int64(0) {
		t.Errorf("int column filled with %v", a.Values[1])
	}
	b, _ := s.ds.Column("b")
	if b.Values[0] != float64(0) {
		t.Errorf("float column filled with %v", b.Values[0])
	}
	c, _ := s.ds.Column("c")
	if c.Values[0] != nil {
		t.Error("text column must be untouched by a numeric fill")
	}
}

func TestSession_CleanMissing_FillMode(t *testing.T) {
	s := testSession(
		&dataset.Column{Name: "g", Type: dataset.TypeText, Values: []any{"B", "A", "B", nil}},
	)

	res, err := s.CleanMissing(FillMode, "g")
	if err != nil {
		t.Fatal(err)
	}
	if res.Affected != 1 {
		t.Errorf("expected 1 cell filled, got %d", res.Affected)
	}
	col, _ := s.ds.Column("g")
	if col.Values[3] != "B" {
		t.Errorf("expected mode B, got %v", col.Values[3])
	}
}

func TestSession_CleanMissing_UnknownStrategy(t *testing.T) {
	s := gradesSession()
	if _, err := s.CleanMissing(CleanStrategy(99), ""); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}
