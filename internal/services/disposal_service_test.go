package services_test

import (
	"errors"
	"testing"

	"ecycle/internal/catalog"
	"ecycle/internal/repos"
	"ecycle/internal/services"
)

func TestScheduleDisposal(t *testing.T) {
	db := memdb(t)
	svc := &services.DisposalService{
		Disposals:       repos.NewDisposalRepo(db),
		Classifications: repos.NewClassificationRepo(db),
		Catalog:         catalog.Load(),
	}
	seedUser(t, db, "a@x.com", "a")
	seedUser(t, db, "b@x.com", "b")
	c := seedClassification(t, db, 1, "broken")

	date := "2026-09-15"
	loc := "14 Pine Ave"
	d, err := svc.Schedule(1, services.DisposalInput{
		ClassificationID: c.ID,
		DisposalMethod:   "pickup",
		PickupDate:       &date,
		PickupLocation:   &loc,
		VendorFilter:     "computers",
	})
	if err != nil {
		t.Fatal(err)
	}
	if d.Status != "pending" {
		t.Fatalf("want status pending, got %q", d.Status)
	}
	if d.PickupDate == nil || *d.PickupDate != date {
		t.Fatalf("pickup date lost: %+v", d.PickupDate)
	}

	if _, err := svc.Schedule(2, services.DisposalInput{ClassificationID: c.ID, DisposalMethod: "dropoff"}); !errors.Is(err, services.ErrClassificationNotFound) {
		t.Fatalf("want ErrClassificationNotFound for foreign classification, got %v", err)
	}

	list, err := svc.List(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != d.ID {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestVendorDirectory(t *testing.T) {
	svc := &services.DisposalService{Catalog: catalog.Load()}

	for _, vt := range []string{"batteries", "computers", "appliances", "phones"} {
		if len(svc.Vendors(vt)) == 0 {
			t.Fatalf("no vendors for %q", vt)
		}
	}
	if got := svc.Vendors("submarines"); got == nil || len(got) != 0 {
		t.Fatalf("unknown type should yield empty slice, got %#v", got)
	}
}
