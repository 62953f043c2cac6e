package order

import "testing"

func TestCreateRequestValidate(t *testing.T) {
	valid := CreateRequest{
		CustomerID: "c1",
		Lines:      []CreateLineRequest{{ProductID: "p1", Quantity: 1}},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	cases := []struct {
		name string
		req  CreateRequest
	}{
		{"missing customer id", CreateRequest{Lines: []CreateLineRequest{{ProductID: "p1", Quantity: 1}}}},
		{"no lines", CreateRequest{CustomerID: "c1"}},
		{"missing product id", CreateRequest{CustomerID: "c1", Lines: []CreateLineRequest{{Quantity: 1}}}},
		{"zero quantity", CreateRequest{CustomerID: "c1", Lines: []CreateLineRequest{{ProductID: "p1"}}}},
	}
	for _, tc := range cases {
		if err := tc.req.Validate(); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
