package presenters

import (
	"testing"
	"time"

	"github.com/onsi/gomega"
	"google.golang.org/api/iam/v1"

	"github.com/google/keyrotator/pkg/api"
)

func TestPresentServiceAccountKey(t *testing.T) {
	type args struct {
		key *iam.ServiceAccountKey
	}
	tests := []struct {
		name    string
		args    args
		want    api.ServiceAccountKey
		wantErr bool
	}{
		{
			name: "should convert a key resource",
			args: args{
				key: &iam.ServiceAccountKey{
					Name:            "projects/p/serviceAccounts/a@p.iam.gserviceaccount.com/keys/abc123",
					KeyType:         api.KeyTypeUserManaged,
					KeyAlgorithm:    api.KeyAlgorithmRSA2048,
					KeyOrigin:       "GOOGLE_PROVIDED",
					ValidAfterTime:  "2023-04-01T10:00:00Z",
					ValidBeforeTime: "9999-12-31T23:59:59Z",
				},
			},
			want: api.ServiceAccountKey{
				ID:              "abc123",
				Name:            "projects/p/serviceAccounts/a@p.iam.gserviceaccount.com/keys/abc123",
				KeyType:         api.KeyTypeUserManaged,
				KeyAlgorithm:    api.KeyAlgorithmRSA2048,
				KeyOrigin:       "GOOGLE_PROVIDED",
				ValidAfterTime:  time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC),
				ValidBeforeTime: time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC),
			},
		},
		{
			name: "should reject a key with malformed validAfterTime",
			args: args{
				key: &iam.ServiceAccountKey{
					Name:           "projects/p/serviceAccounts/a/keys/abc123",
					ValidAfterTime: "yesterday",
				},
			},
			wantErr: true,
		},
		{
			name: "should tolerate a malformed validBeforeTime",
			args: args{
				key: &iam.ServiceAccountKey{
					Name:            "projects/p/serviceAccounts/a/keys/abc123",
					ValidAfterTime:  "2023-04-01T10:00:00Z",
					ValidBeforeTime: "never",
				},
			},
			want: api.ServiceAccountKey{
				ID:             "abc123",
				Name:           "projects/p/serviceAccounts/a/keys/abc123",
				ValidAfterTime: time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)

			converted, err := PresentServiceAccountKey(tt.args.key)
			g.Expect(err != nil).To(gomega.Equal(tt.wantErr))
			if !tt.wantErr {
				g.Expect(converted).To(gomega.Equal(tt.want))
			}
		})
	}
}

func TestKeyIDFromResourceName(t *testing.T) {
	g := gomega.NewWithT(t)

	g.Expect(KeyIDFromResourceName("projects/p/serviceAccounts/a/keys/abc123")).To(gomega.Equal("abc123"))
	g.Expect(KeyIDFromResourceName("abc123")).To(gomega.Equal("abc123"))
	g.Expect(KeyIDFromResourceName("")).To(gomega.Equal(""))
}
