package sanitize

import "testing"

func TestText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Q1 Audit", "Q1 Audit"},
		{"  padded  ", "padded"},
		{"<script>alert(1)</script>Report", "Report"},
		{"<b>March</b> expenses", "March expenses"},
		{`<a href="javascript:alert(1)">link</a>`, "link"},
		{"Revenue & Expenses", "Revenue & Expenses"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Text(tc.in); got != tc.want {
			t.Errorf("Text(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStrings(t *testing.T) {
	got := Strings([]string{"<i>receipt.pdf</i>", " bill.png "})
	if got[0] != "receipt.pdf" || got[1] != "bill.png" {
		t.Errorf("unexpected result: %v", got)
	}
}
