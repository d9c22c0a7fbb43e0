package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestValidateCampaignInput(t *testing.T) {
	balance := dec("1000.00")

	t.Run("valid input normalizes", func(t *testing.T) {
		norm, err := ValidateCampaignInput(CampaignInput{
			Name:             "  Q1 Growth ",
			InvestmentAmount: "500",
			DurationDays:     "30",
			ROIPercentage:    "1.5",
		}, &balance)
		require.NoError(t, err)
		assert.Equal(t, "Q1 Growth", norm.Name)
		assert.True(t, norm.Investment.Equal(dec("500")))
		assert.Equal(t, 30, norm.Duration)
		assert.True(t, norm.ROI.Equal(dec("1.5")))
	})

	t.Run("rule order and messages", func(t *testing.T) {
		cases := []struct {
			name string
			in   CampaignInput
			msg  string
		}{
			{"empty name", CampaignInput{Name: "   ", InvestmentAmount: "500", DurationDays: "30", ROIPercentage: "1.5"}, "Campaign name is required"},
			{"unparseable investment", CampaignInput{Name: "A", InvestmentAmount: "abc", DurationDays: "30", ROIPercentage: "1.5"}, "Enter a valid investment amount"},
			{"zero investment", CampaignInput{Name: "A", InvestmentAmount: "0", DurationDays: "30", ROIPercentage: "1.5"}, "Enter a valid investment amount"},
			{"negative investment", CampaignInput{Name: "A", InvestmentAmount: "-5", DurationDays: "30", ROIPercentage: "1.5"}, "Enter a valid investment amount"},
			{"unparseable duration", CampaignInput{Name: "A", InvestmentAmount: "500", DurationDays: "4.5", ROIPercentage: "1.5"}, "Enter a valid duration (days)"},
			{"zero duration", CampaignInput{Name: "A", InvestmentAmount: "500", DurationDays: "0", ROIPercentage: "1.5"}, "Enter a valid duration (days)"},
			{"unparseable roi", CampaignInput{Name: "A", InvestmentAmount: "500", DurationDays: "30", ROIPercentage: "x"}, "Enter a valid ROI percentage"},
			{"zero roi", CampaignInput{Name: "A", InvestmentAmount: "500", DurationDays: "30", ROIPercentage: "0"}, "Enter a valid ROI percentage"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ValidateCampaignInput(tc.in, &balance)
				require.Error(t, err)
				assert.EqualError(t, err, tc.msg)
			})
		}
	})

	t.Run("first rule wins on multiple violations", func(t *testing.T) {
		_, err := ValidateCampaignInput(CampaignInput{Name: "", InvestmentAmount: "-5"}, &balance)
		assert.EqualError(t, err, "Campaign name is required")
	})

	t.Run("insufficient balance with two-decimal formatting", func(t *testing.T) {
		low := dec("100")
		_, err := ValidateCampaignInput(CampaignInput{
			Name: "A", InvestmentAmount: "500", DurationDays: "30", ROIPercentage: "1.5",
		}, &low)
		require.Error(t, err)
		assert.EqualError(t, err, "Insufficient balance. Available: $100.00")
		var ierr *InsufficientBalanceError
		assert.ErrorAs(t, err, &ierr)
	})

	t.Run("investment equal to balance passes", func(t *testing.T) {
		_, err := ValidateCampaignInput(CampaignInput{
			Name: "A", InvestmentAmount: "1000", DurationDays: "30", ROIPercentage: "1.5",
		}, &balance)
		assert.NoError(t, err)
	})

	t.Run("nil balance skips funds check", func(t *testing.T) {
		_, err := ValidateCampaignInput(CampaignInput{
			Name: "A", InvestmentAmount: "999999", DurationDays: "30", ROIPercentage: "1.5",
		}, nil)
		assert.NoError(t, err)
	})
}

func TestPreviewCampaign(t *testing.T) {
	norm, err := ValidateCampaignInput(CampaignInput{
		Name: "Q1 Growth", InvestmentAmount: "500", DurationDays: "30", ROIPercentage: "1.5",
	}, nil)
	require.NoError(t, err)

	preview := PreviewCampaign(norm)
	assert.Equal(t, "7.50", preview.DailyROI.StringFixed(2))
	assert.Equal(t, "225.00", preview.ProjectedTotal.StringFixed(2))
}
