// Package query selects elements of a document with expr-lang predicates.
//
// A predicate sees one element at a time through [Env]:
//
//	name == "SyncKey" && text != "0"
//	page == 17 && size > 1024
//	has("GetChanges") && child("CollectionId") == "1"
//
// The functions child, has and hex are available in every predicate.
package query
