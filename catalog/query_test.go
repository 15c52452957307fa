package catalog

import (
	"context"
	"testing"
)

func selectDocs() map[string]string {
	return map[string]string{
		"computers": `<computers>
			<size>3</size>
			<computer><id>1</id><name>lab-01</name></computer>
			<computer><id>2</id><name>lab-02</name></computer>
			<computer><id>3</id><name>kiosk</name></computer>
		</computers>`,
		"computers/id/1": `<computer><general><id>1</id><name>lab-01</name><site><name>HQ</name></site></general></computer>`,
		"computers/id/2": `<computer><general><id>2</id><name>lab-02</name><site><name>Annex</name></site></general></computer>`,
		"computers/id/3": `<computer><general><id>3</id><name>kiosk</name><site><name>HQ</name></site></general></computer>`,
	}
}

func TestSelectByName(t *testing.T) {
	client, ft := newTestClient(t, selectDocs())
	coll, err := client.Collection("computers")
	if err != nil {
		t.Fatal(err)
	}
	recs, err := coll.Select(context.Background(), `name startsWith "lab-"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 || recs[0].ID() != 1 || recs[1].ID() != 2 {
		t.Errorf("select gave %v", recs)
	}
	for _, p := range []string{"computers/id/1", "computers/id/2", "computers/id/3"} {
		if ft.fetches[p] != 0 {
			t.Errorf("name-only query fetched %s", p)
		}
	}
}

func TestSelectWithGet(t *testing.T) {
	client, _ := newTestClient(t, selectDocs())
	coll, err := client.Collection("computers")
	if err != nil {
		t.Fatal(err)
	}
	recs, err := coll.Select(context.Background(), `get("general/site/name") == "HQ"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 || recs[0].ID() != 1 || recs[1].ID() != 3 {
		t.Errorf("select gave %v", recs)
	}
}

func TestSelectMissingPathIsNil(t *testing.T) {
	client, _ := newTestClient(t, selectDocs())
	coll, err := client.Collection("computers")
	if err != nil {
		t.Fatal(err)
	}
	recs, err := coll.Select(context.Background(), `get("general/asset_tag") == nil`)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Errorf("missing path matched %d records, want 3", len(recs))
	}
}

func TestSelectBadExpression(t *testing.T) {
	client, _ := newTestClient(t, selectDocs())
	coll, err := client.Collection("computers")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := coll.Select(context.Background(), `name +`); err == nil {
		t.Errorf("bad expression accepted")
	}
	if _, err := coll.Select(context.Background(), `id`); err == nil {
		t.Errorf("non-boolean expression accepted")
	}
}
