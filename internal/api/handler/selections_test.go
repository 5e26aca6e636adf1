package handler

import (
	"bytes"
	"net/url"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestParseSelections(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		want      domain.Selections
		wantError bool
	}{
		{
			name:  "Sem parâmetros",
			query: "",
			want:  domain.Selections{},
		},
		{
			name:  "Parâmetro repetido",
			query: "city=Yangon&city=Mandalay",
			want:  domain.Selections{domain.DimensionCity: {"Yangon", "Mandalay"}},
		},
		{
			name:  "Parâmetro vazio vira conjunto vazio",
			query: "gender=",
			want:  domain.Selections{domain.DimensionGender: {}},
		},
		{
			name:      "Parâmetro desconhecido",
			query:     "branch=A",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := parseSelections(query)
			if tt.wantError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectionFields(t *testing.T) {
	fields := selectionFields(domain.Selections{
		domain.DimensionCity:         {"Yangon", "Mandalay"},
		domain.DimensionCustomerType: {"Member"},
		domain.DimensionGender:       {},
	})

	assert.Equal(t, log.Fields{
		"selection_city":          "Yangon,Mandalay",
		"selection_customer_type": "Member",
		"selection_gender":        "",
	}, fields)
}

func TestGetDashboard_RegistraSelecoesResolvidas(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	log.SetupTestLogger()
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})

	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().Build(gomock.Any(), domain.Selections{
		domain.DimensionCity: {"Yangon"},
	}).Return(&domain.Dashboard{
		DatasetID: "carga-1",
		Selections: domain.Selections{
			domain.DimensionCity:         {"Yangon"},
			domain.DimensionCustomerType: {"Member", "Normal"},
			domain.DimensionGender:       {"Female", "Male"},
		},
	}, nil)

	rec := doRequest(newTestRouter(service), "/v1/dashboard?city=Yangon")
	require.Equal(t, 200, rec.Code)

	out := buf.String()
	assert.Contains(t, out, "selection_city=Yangon")
	assert.Contains(t, out, "selection_customer_type=\"Member,Normal\"")
	assert.Contains(t, out, "selection_gender=\"Female,Male\"")
	assert.Contains(t, out, "dataset_id=carga-1")
}
