package keys

import (
	"context"
	"testing"
	"time"

	"github.com/onsi/gomega"

	"github.com/google/keyrotator/pkg/api"
	"github.com/google/keyrotator/pkg/config"
	"github.com/google/keyrotator/pkg/errors"
	"github.com/google/keyrotator/pkg/services"
)

func Test_cleanupAccount_RejectsNegativeMaxAge(t *testing.T) {
	type args struct {
		maxAge time.Duration
		dryRun bool
	}
	tests := []struct {
		name string
		args args
	}{
		{
			name: "negative max age is rejected on a real run",
			args: args{
				maxAge: -24 * time.Hour,
				dryRun: false,
			},
		},
		{
			name: "negative max age is rejected on a dry run",
			args: args{
				maxAge: -24 * time.Hour,
				dryRun: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			keyService := &services.KeyServiceMock{
				ListKeysFunc: func(ctx context.Context, projectID string, iamAccount string) (api.ServiceAccountKeyList, *errors.ServiceError) {
					return api.ServiceAccountKeyList{Kind: "ServiceAccountKeyList"}, nil
				},
				CleanupKeysFunc: func(ctx context.Context, projectID string, iamAccount string, maxAge time.Duration, excludeKeyIDs ...string) ([]api.ServiceAccountKey, *errors.ServiceError) {
					return nil, nil
				},
			}

			serviceErr := cleanupAccount(context.Background(), keyService, "test-project", "rotator@test-project.iam.gserviceaccount.com", tt.args.maxAge, tt.args.dryRun)

			g.Expect(serviceErr).ToNot(gomega.BeNil())
			g.Expect(serviceErr.IsValidation()).To(gomega.BeTrue())
			g.Expect(keyService.ListKeysCalls()).To(gomega.BeEmpty())
			g.Expect(keyService.CleanupKeysCalls()).To(gomega.BeEmpty())
		})
	}
}

func Test_cleanupAccount_DryRunDeletesNothing(t *testing.T) {
	g := gomega.NewWithT(t)

	staleKey := api.ServiceAccountKey{
		ID:             "key-stale",
		KeyType:        api.KeyTypeUserManaged,
		ValidAfterTime: time.Now().Add(-60 * 24 * time.Hour),
	}
	freshKey := api.ServiceAccountKey{
		ID:             "key-fresh",
		KeyType:        api.KeyTypeUserManaged,
		ValidAfterTime: time.Now().Add(-time.Hour),
	}

	keyService := &services.KeyServiceMock{
		ListKeysFunc: func(ctx context.Context, projectID string, iamAccount string) (api.ServiceAccountKeyList, *errors.ServiceError) {
			return api.ServiceAccountKeyList{
				Kind:  "ServiceAccountKeyList",
				Items: []api.ServiceAccountKey{staleKey, freshKey},
			}, nil
		},
	}

	serviceErr := cleanupAccount(context.Background(), keyService, "test-project", "rotator@test-project.iam.gserviceaccount.com", 30*24*time.Hour, true)

	g.Expect(serviceErr).To(gomega.BeNil())
	g.Expect(keyService.ListKeysCalls()).To(gomega.HaveLen(1))
	g.Expect(keyService.CleanupKeysCalls()).To(gomega.BeEmpty())
	g.Expect(keyService.DeleteKeyCalls()).To(gomega.BeEmpty())
}

func Test_cleanupPolicies(t *testing.T) {
	failingAccount := "broken@test-project.iam.gserviceaccount.com"

	type args struct {
		policies config.RotationPolicyList
	}
	tests := []struct {
		name       string
		args       args
		wantFailed int
	}{
		{
			name: "all accounts succeed",
			args: args{
				policies: config.RotationPolicyList{
					{IamAccount: "a@test-project.iam.gserviceaccount.com", KeyMaxAgeDays: 30},
					{IamAccount: "b@test-project.iam.gserviceaccount.com", KeyMaxAgeDays: 7},
				},
			},
			wantFailed: 0,
		},
		{
			name: "a failing account does not stop the remaining accounts",
			args: args{
				policies: config.RotationPolicyList{
					{IamAccount: "a@test-project.iam.gserviceaccount.com", KeyMaxAgeDays: 30},
					{IamAccount: failingAccount, KeyMaxAgeDays: 30},
					{IamAccount: "c@test-project.iam.gserviceaccount.com", KeyMaxAgeDays: 90},
				},
			},
			wantFailed: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			keyService := &services.KeyServiceMock{
				CleanupKeysFunc: func(ctx context.Context, projectID string, iamAccount string, maxAge time.Duration, excludeKeyIDs ...string) ([]api.ServiceAccountKey, *errors.ServiceError) {
					if iamAccount == failingAccount {
						return nil, errors.FailedToDeleteKey("service account %s has gone missing", iamAccount)
					}
					return []api.ServiceAccountKey{}, nil
				},
			}

			failed := cleanupPolicies(context.Background(), keyService, "test-project", tt.args.policies, false)

			g.Expect(failed).To(gomega.Equal(tt.wantFailed))
			g.Expect(keyService.CleanupKeysCalls()).To(gomega.HaveLen(len(tt.args.policies)))
		})
	}
}
