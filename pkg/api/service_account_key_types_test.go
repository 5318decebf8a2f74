package api

import (
	"testing"
	"time"

	"github.com/onsi/gomega"
)

var testNow = time.Date(2023, 4, 14, 12, 0, 0, 0, time.UTC)

func TestServiceAccountKey_Age(t *testing.T) {
	g := gomega.NewWithT(t)

	key := ServiceAccountKey{
		ID:             "key-1",
		ValidAfterTime: testNow.Add(-72 * time.Hour),
	}

	g.Expect(key.Age(testNow)).To(gomega.Equal(72 * time.Hour))
}

func TestServiceAccountKey_OlderThan(t *testing.T) {
	type args struct {
		age    time.Duration
		maxAge time.Duration
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			name: "should report a key past the maximum age as older",
			args: args{age: 31 * 24 * time.Hour, maxAge: 30 * 24 * time.Hour},
			want: true,
		},
		{
			name: "should not report a key within the maximum age",
			args: args{age: 24 * time.Hour, maxAge: 30 * 24 * time.Hour},
			want: false,
		},
		{
			name: "should not report a key exactly at the maximum age",
			args: args{age: 30 * 24 * time.Hour, maxAge: 30 * 24 * time.Hour},
			want: false,
		},
		{
			name: "should report any aged key when the maximum age is zero",
			args: args{age: time.Second, maxAge: 0},
			want: true,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)

			key := ServiceAccountKey{ValidAfterTime: testNow.Add(-tt.args.age)}
			g.Expect(key.OlderThan(tt.args.maxAge, testNow)).To(gomega.Equal(tt.want))
		})
	}
}

func TestServiceAccountKey_IsUserManaged(t *testing.T) {
	g := gomega.NewWithT(t)

	g.Expect(ServiceAccountKey{KeyType: KeyTypeUserManaged}.IsUserManaged()).To(gomega.BeTrue())
	g.Expect(ServiceAccountKey{KeyType: KeyTypeSystemManaged}.IsUserManaged()).To(gomega.BeFalse())
	g.Expect(ServiceAccountKey{}.IsUserManaged()).To(gomega.BeFalse())
}

func TestServiceAccountKeyList_Index(t *testing.T) {
	g := gomega.NewWithT(t)

	list := ServiceAccountKeyList{
		Kind: "ServiceAccountKeyList",
		Items: []ServiceAccountKey{
			{ID: "key-1"},
			{ID: "key-2"},
		},
	}

	index := list.Index()
	g.Expect(index).To(gomega.HaveLen(2))
	g.Expect(index["key-1"].ID).To(gomega.Equal("key-1"))
	g.Expect(index["key-2"].ID).To(gomega.Equal("key-2"))
}
