// Package catalog maps remote catalog entities onto identity-tracked
// records and collections.
//
// # Usage
//
// A Client joins a Transport with an entity type table and an identity
// Registry.  Collections give the listing view of one entity type;
// Records hold one entity's data tree, loaded lazily and edited with
// path expressions.  Edits accumulate into a minimal diff that Save
// submits in place of the full document.
//
//	client := catalog.New(catalog.NewHTTPTransport(url, user, pass))
//	coll, err := client.Collection("policies")
//	rec, err := coll.Find(ctx, "Install Things")
//	err = rec.SetString(ctx, "general/enabled", "false")
//	err = rec.Save(ctx)
//
// At most one live Record exists per (type, id) within a Registry, so
// two lookups of the same entity observe each other's state.
//
// # Related Packages
//
// Package ir holds the data trees and path expressions; package codec
// translates them to and from the wire documents.
package catalog
