package catalog

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestRefreshReplacesListing(t *testing.T) {
	docs := buildingsDocs()
	client, _ := newTestClient(t, docs)
	ctx := context.Background()

	coll, err := client.Collection("buildings")
	if err != nil {
		t.Fatal(err)
	}
	names, err := coll.Names(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(names, ","); got != "HQ,Annex" {
		t.Fatalf("names = %q", got)
	}

	docs["buildings"] = `<buildings>
		<size>1</size>
		<building><id>2</id><name>Annex</name></building>
	</buildings>`
	if err := coll.Refresh(ctx); err != nil {
		t.Fatal(err)
	}
	ids, err := coll.IDs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != 2 {
		t.Errorf("ids after refresh = %v, want [2]", ids)
	}
	if _, err := coll.ByID(ctx, 1); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("stale id still resolves: %v", err)
	}
}

func TestRefreshSingletonListing(t *testing.T) {
	docs := map[string]string{
		"sites": `<sites><size>1</size><site><id>1</id><name>Main</name></site></sites>`,
	}
	client, _ := newTestClient(t, docs)

	coll, err := client.Collection("sites")
	if err != nil {
		t.Fatal(err)
	}
	n, err := coll.Len(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("len = %d, want 1", n)
	}
}

func TestRefreshSkipsEntriesWithoutIdentity(t *testing.T) {
	docs := map[string]string{
		"buildings": `<buildings>
			<size>3</size>
			<building><id>1</id><name>HQ</name></building>
			<building><name>No Id</name></building>
			<building><id>3</id><name>Annex</name></building>
		</buildings>`,
	}
	client, _ := newTestClient(t, docs)

	coll, err := client.Collection("buildings")
	if err != nil {
		t.Fatal(err)
	}
	ids, err := coll.IDs(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Errorf("ids = %v, want [1 3]", ids)
	}
}

func TestByRegex(t *testing.T) {
	client, _ := newTestClient(t, buildingsDocs())
	ctx := context.Background()

	coll, err := client.Collection("buildings")
	if err != nil {
		t.Fatal(err)
	}
	recs, err := coll.ByRegex(ctx, "^A")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Name() != "Annex" {
		t.Errorf("ByRegex(^A) = %v", recs)
	}
	if _, err := coll.ByRegex(ctx, "("); err == nil {
		t.Errorf("bad pattern accepted")
	}
}

func TestFind(t *testing.T) {
	docs := map[string]string{
		"buildings": `<buildings>
			<size>3</size>
			<building><id>1</id><name>HQ</name></building>
			<building><id>2</id><name>Annex</name></building>
			<building><id>3</id><name>Annex</name></building>
		</buildings>`,
	}
	client, _ := newTestClient(t, docs)
	ctx := context.Background()

	coll, err := client.Collection("buildings")
	if err != nil {
		t.Fatal(err)
	}
	rec, err := coll.Find(ctx, "HQ")
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID() != 1 {
		t.Errorf("Find(HQ).ID = %d", rec.ID())
	}
	rec, err = coll.Find(ctx, "2")
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID() != 2 {
		t.Errorf("Find(\"2\").ID = %d", rec.ID())
	}
	if _, err := coll.Find(ctx, "Annex"); err == nil {
		t.Errorf("ambiguous name accepted")
	}
	if _, err := coll.Find(ctx, "Gone"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("Find(Gone): %v, want ErrRecordNotFound", err)
	}
}

func TestCreate(t *testing.T) {
	docs := buildingsDocs()
	client, ft := newTestClient(t, docs)
	ctx := context.Background()

	ft.submitFn = func(method, path string, body []byte) ([]byte, error) {
		docs["buildings"] = `<buildings>
			<size>3</size>
			<building><id>1</id><name>HQ</name></building>
			<building><id>2</id><name>Annex</name></building>
			<building><id>3</id><name>Depot</name></building>
		</buildings>`
		return []byte(`<building><id>3</id></building>`), nil
	}

	coll, err := client.Collection("buildings")
	if err != nil {
		t.Fatal(err)
	}
	rec, err := coll.Create(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	sub := ft.submits[0]
	if sub.method != http.MethodPost || sub.path != "buildings/id/0" {
		t.Errorf("submitted %s %s", sub.method, sub.path)
	}
	if !strings.HasPrefix(sub.body, "<building><name>") {
		t.Errorf("stub payload = %s", sub.body)
	}
	if rec.ID() != 3 || rec.Name() != "Depot" {
		t.Errorf("created record = %d %q", rec.ID(), rec.Name())
	}
	same, err := coll.ByID(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if same != rec {
		t.Errorf("created record has a distinct instance in the collection")
	}
}

func TestCreateExplicitPayload(t *testing.T) {
	docs := buildingsDocs()
	client, ft := newTestClient(t, docs)
	ctx := context.Background()

	ft.submitFn = func(method, path string, body []byte) ([]byte, error) {
		docs["buildings"] = `<buildings>
			<size>3</size>
			<building><id>1</id><name>HQ</name></building>
			<building><id>2</id><name>Annex</name></building>
			<building><id>9</id><name>Depot</name></building>
		</buildings>`
		return []byte(`<building><id>9</id></building>`), nil
	}
	coll, err := client.Collection("buildings")
	if err != nil {
		t.Fatal(err)
	}
	payload := stubBody("building", "name", "Depot")
	rec, err := coll.Create(ctx, payload)
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID() != 9 {
		t.Errorf("created id = %d, want 9", rec.ID())
	}
	if got := ft.submits[0].body; got != `<building><name>Depot</name></building>` {
		t.Errorf("payload = %s", got)
	}
}

func TestDeleteManyRefreshesOnce(t *testing.T) {
	docs := buildingsDocs()
	client, ft := newTestClient(t, docs)
	ctx := context.Background()

	coll, err := client.Collection("buildings")
	if err != nil {
		t.Fatal(err)
	}
	if err := coll.Refresh(ctx); err != nil {
		t.Fatal(err)
	}
	before := ft.fetches["buildings"]

	ft.submitFn = func(method, path string, body []byte) ([]byte, error) {
		docs["buildings"] = `<buildings><size>0</size></buildings>`
		return []byte("<ok/>"), nil
	}
	if err := coll.Delete(ctx, 1, 2); err != nil {
		t.Fatal(err)
	}
	if len(ft.submits) != 2 {
		t.Errorf("%d submits, want 2", len(ft.submits))
	}
	if got := ft.fetches["buildings"] - before; got != 1 {
		t.Errorf("listing fetched %d times during Delete, want 1", got)
	}
	n, err := coll.Len(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("len after delete = %d", n)
	}
}

func TestUnknownEntityType(t *testing.T) {
	client, _ := newTestClient(t, nil)
	if _, err := client.Collection("widgets"); !errors.Is(err, ErrUnknownEntityType) {
		t.Errorf("got %v, want ErrUnknownEntityType", err)
	}
	if _, err := client.Collection("Buildings"); err != nil {
		t.Errorf("case-insensitive lookup failed: %v", err)
	}
}
