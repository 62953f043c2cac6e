package customer

import (
	"testing"
	"time"
)

func TestCreateRequestValidate(t *testing.T) {
	birth := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	valid := CreateRequest{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "+55 11 99999-0001",
		BirthDate: birth,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	cases := []struct {
		name string
		req  CreateRequest
	}{
		{"name too short", CreateRequest{Name: "Jo", Email: "jane@example.com", Phone: "11999990001", BirthDate: birth}},
		{"bad email", CreateRequest{Name: "Jane Doe", Email: "not-an-email", Phone: "11999990001", BirthDate: birth}},
		{"bad phone", CreateRequest{Name: "Jane Doe", Email: "jane@example.com", Phone: "call me", BirthDate: birth}},
		{"missing birth date", CreateRequest{Name: "Jane Doe", Email: "jane@example.com", Phone: "11999990001"}},
	}
	for _, tc := range cases {
		if err := tc.req.Validate(); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
