package enrich

import "testing"

func TestExtractStipend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        float64
	}{
		{
			name:        "no numbers",
			title:       "Python Intern",
			description: "a great opportunity",
			want:        0,
		},
		{
			name:        "dollar amount",
			description: "stipend of $2,500 for the summer",
			want:        2500,
		},
		{
			name:        "dollar amount with cents",
			description: "we pay $1,250.50",
			want:        1250.50,
		},
		{
			name:        "hourly rate scaled to monthly",
			description: "pays $25 per hour",
			want:        25 * 160,
		},
		{
			name:        "monthly rate is a net no-op conversion",
			description: "$3,000 per month",
			// "month" contains "mo": amount*12/12 leaves it unchanged
			want: 3000,
		},
		{
			name:  "amount in title only",
			title: "Intern ($800)",
			want:  800,
		},
		{
			name:        "first match wins",
			description: "$500 now, $900 later",
			want:        500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractStipend(tt.title, tt.description)
			if got != tt.want {
				t.Errorf("ExtractStipend() = %v, want %v", got, tt.want)
			}
		})
	}
}
