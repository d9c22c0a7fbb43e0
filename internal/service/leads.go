package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Lead generation mirrors the campaign leads report: rows derive
// deterministically from the campaign id so repeated views agree. The data is
// illustrative; no lead store exists yet.

type Lead struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Status    string          `json:"status"` // new, contacted, qualified, won, lost
	Source    string          `json:"source"` // facebook, google, tiktok, organic
	Cost      decimal.Decimal `json:"cost"`
	CreatedAt time.Time       `json:"created_at"`
}

type LeadsSummary struct {
	Total       int             `json:"total"`
	Won         int             `json:"won"`
	Qualified   int             `json:"qualified"`
	Spend       decimal.Decimal `json:"spend"`
	CostPerLead decimal.Decimal `json:"cost_per_lead"`
}

var (
	leadNames    = []string{"Alex Johnson", "Maria Gomez", "John Smith", "Sofia Lee", "Carlos Diaz", "Emma Wilson"}
	leadSources  = []string{"facebook", "google", "tiktok", "organic"}
	leadStatuses = []string{"new", "contacted", "qualified", "won", "lost"}
	leadCosts    = []string{"8.50", "12.00", "14.50", "18.75", "9.99", "22.30"}
)

func GenerateLeads(campaignID string, now time.Time) []Lead {
	base := campaignID
	if len(base) > 8 {
		base = base[:8]
	}
	leads := make([]Lead, 0, 12)
	for i := 0; i < 12; i++ {
		name := leadNames[i%len(leadNames)]
		cost, _ := decimal.NewFromString(leadCosts[i%len(leadCosts)])
		leads = append(leads, Lead{
			ID:        fmt.Sprintf("%s-%d", base, i),
			Name:      name,
			Email:     strings.ReplaceAll(strings.ToLower(name), " ", ".") + strconv.Itoa(i) + "@example.com",
			Phone:     fmt.Sprintf("+1 (555) 01%02d-%d", i+10, 100+i),
			Status:    leadStatuses[i%len(leadStatuses)],
			Source:    leadSources[i%len(leadSources)],
			Cost:      cost,
			CreatedAt: now.Add(-time.Duration(i) * 24 * time.Hour),
		})
	}
	return leads
}

func SummarizeLeads(leads []Lead) LeadsSummary {
	s := LeadsSummary{Total: len(leads)}
	for _, l := range leads {
		switch l.Status {
		case "won":
			s.Won++
		case "qualified":
			s.Qualified++
		}
		s.Spend = s.Spend.Add(l.Cost)
	}
	if s.Total > 0 {
		s.CostPerLead = s.Spend.Div(decimal.NewFromInt(int64(s.Total))).Round(2)
	}
	return s
}

// LeadsCSV renders the export consumed by the dashboard download button.
func LeadsCSV(leads []Lead) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "name", "email", "phone", "status", "source", "cost", "created_at"}); err != nil {
		return nil, err
	}
	for _, l := range leads {
		rec := []string{l.ID, l.Name, l.Email, l.Phone, l.Status, l.Source, l.Cost.StringFixed(2), l.CreatedAt.Format(time.RFC3339)}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
