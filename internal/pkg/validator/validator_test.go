package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestIndexedField(t *testing.T) {
	assert.Equal(t, "attendanceList[3].note", IndexedField("attendanceList", 3, "note"))
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "phone", Message: "required"},
	}
	got := errs.Error()
	want := "email: invalid; phone: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMapKeepsEveryMessage(t *testing.T) {
	var errs ValidationErrors
	errs.Add("email", "invalid")
	errs.Add("phone", "required")
	errs.Add("email", "second")

	got := errs.ToMap()
	assert.Equal(t, map[string][]string{"email": {"invalid", "second"}, "phone": {"required"}}, got)
	assert.True(t, errs.HasField("phone"))
	assert.False(t, errs.HasField("name"))
}

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Hour  *int   `json:"hour" validate:"omitempty,min=0,max=23"`
	Skip  string `json:"-" validate:"required"`
}

func TestStruct(t *testing.T) {
	hour := 24
	errs := Struct(sample{Email: "nope", Hour: &hour})
	require.Len(t, errs, 3)

	m := errs.ToMap()
	assert.Equal(t, []string{"email must be a valid email address"}, m["email"])
	assert.Equal(t, []string{"hour must not exceed 23"}, m["hour"])
	assert.Equal(t, []string{"Skip is required"}, m["Skip"])
}

func TestStruct_Valid(t *testing.T) {
	hour := 9
	assert.Nil(t, Struct(sample{Email: "student@example.com", Hour: &hour, Skip: "x"}))
	assert.Nil(t, Struct(sample{Email: "student@example.com", Skip: "x"}))
}
