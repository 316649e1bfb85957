package query_history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	queryHistory "github.com/campusops/SFR-ReservationService/internal/usecase/query_history"
)

func TestToUseCaseRequest(t *testing.T) {
	req, err := ToUseCaseRequest("2025-10", "")
	require.NoError(t, err)
	assert.Equal(t, 2025, req.Year)
	assert.Equal(t, time.October, req.Month)
	assert.Nil(t, req.ResourceID)

	req, err = ToUseCaseRequest("2024-02", "禮堂")
	require.NoError(t, err)
	assert.Equal(t, time.February, req.Month)
	require.NotNil(t, req.ResourceID)
	assert.Equal(t, "禮堂", *req.ResourceID)
}

func TestToUseCaseRequest_Invalid(t *testing.T) {
	invalid := []string{"", "2025/10", "2025-13", "10-2025"}
	for _, s := range invalid {
		_, err := ToUseCaseRequest(s, "")
		assert.Error(t, err, s)
	}
}

func TestFromUseCaseResponse(t *testing.T) {
	created := time.Date(2025, 10, 10, 9, 30, 0, 0, time.UTC)
	resp := FromUseCaseResponse(&queryHistory.Response{
		Year:  2025,
		Month: time.October,
		Entries: []queryHistory.Entry{
			{
				BookingID:   7,
				ResourceID:  "禮堂",
				Date:        "2025/10/20",
				PeriodIDs:   []string{"period1"},
				PeriodNames: "第一節",
				Booker:      "未知",
				CreatedAt:   created,
			},
		},
	})

	assert.Equal(t, "2025-10", resp.Month)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "2025/10/20", resp.Entries[0].Date)
	assert.Equal(t, "未知", resp.Entries[0].Booker)
	assert.Equal(t, "2025-10-10T09:30:00Z", resp.Entries[0].CreatedAt)
}
