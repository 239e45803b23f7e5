package payment

import "testing"

func TestWithdrawalValidation(t *testing.T) {
	valid := WithdrawalRequest{Amount: 50, Method: MethodPayPal, Account: "alex@example.com"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	cases := []WithdrawalRequest{
		{Amount: 0, Method: MethodPayPal, Account: "x"},
		{Amount: -5, Method: MethodBank, Account: "x"},
		{Amount: 50, Method: "cash", Account: "x"},
		{Amount: 50, Method: MethodSkrill, Account: "   "},
	}
	for i, c := range cases {
		if err := c.Validate(); err == nil {
			t.Fatalf("case %d should fail validation: %+v", i, c)
		}
	}
}

func TestTotalAmountExactSum(t *testing.T) {
	rows := []Payment{
		{Amount: 100.10, Status: StatusPaid},
		{Amount: 50.25, Status: StatusPending},
		{Amount: 25.00, Status: StatusRejected},
	}
	got := TotalAmount(rows)
	want := 100.10 + 50.25 + 25.00
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if s := DisplayAmount(got); s != "175.35" {
		t.Fatalf("expected 2-decimal display, got %s", s)
	}
}

func TestValidMethod(t *testing.T) {
	for _, m := range []Method{MethodPayPal, MethodBank, MethodSkrill} {
		if !ValidMethod(m) {
			t.Fatalf("method %s should be valid", m)
		}
	}
	if ValidMethod("venmo") {
		t.Fatal("unknown method accepted")
	}
}
