package insight

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClient_Breakdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		want       *Breakdown
		wantRanked []CategoryCount
	}{
		{
			name: "categories and hours",
			body: `{"category_breakdown":{"Deep Work":40,"Communication":12,"Admin":12},"time_distribution":{"9":20,"14":30,"bogus":1,"31":2},"total_entries":64}`,
			want: &Breakdown{
				Categories:   map[string]int{"Deep Work": 40, "Communication": 12, "Admin": 12},
				Hourly:       map[int]int{9: 20, 14: 30},
				TotalEntries: 64,
			},
			wantRanked: []CategoryCount{
				{Category: "Deep Work", Count: 40},
				{Category: "Admin", Count: 12},
				{Category: "Communication", Count: 12},
			},
		},
		{
			name: "no classified data",
			body: `{"error":"No classified data available"}`,
			want: &Breakdown{
				Categories: map[string]int{},
				Hourly:     map[int]int{},
				Reason:     "No classified data available",
			},
			wantRanked: []CategoryCount{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, respond(http.StatusOK, tt.body))

			got, err := c.Breakdown(t.Context())
			if err != nil {
				t.Fatalf("Breakdown() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Breakdown() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantRanked, got.Ranked()); diff != "" {
				t.Errorf("Ranked() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClient_BurnoutFlags_SortedBySeverity(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, respond(http.StatusOK, `{"flags":[
		{"category":"Fragmentation","severity":4,"message":"Frequent switching","prescription":"Batch notifications"},
		{"category":"Overwork","severity":8,"message":"11h sessions","prescription":"Hard stop at 18:00"},
		{"category":"Session Pattern","severity":4,"message":"No breaks","prescription":"Pomodoro"}
	]}`))

	got, err := c.BurnoutFlags(t.Context())
	if err != nil {
		t.Fatalf("BurnoutFlags() error = %v", err)
	}

	var categories []string
	for _, f := range got {
		categories = append(categories, f.Category)
	}
	want := []string{"Overwork", "Fragmentation", "Session Pattern"}
	if diff := cmp.Diff(want, categories); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_BurnoutFlags_Empty(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, respond(http.StatusOK, `{"flags":[]}`))

	got, err := c.BurnoutFlags(t.Context())
	if err != nil {
		t.Fatalf("BurnoutFlags() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("BurnoutFlags() = %v, want empty", got)
	}
}
