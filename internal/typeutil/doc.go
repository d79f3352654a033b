// Package typeutil provides go/types helpers for dbctxguard.
//
// # Overview
//
// The rule reasons about named types only: the enclosing type of a
// constructor, the types it embeds, and the declared types of constructor
// parameters. The helpers here reduce an arbitrary [types.Type] to that view.
//
// # Named Type Lookup
//
// Use [Named] to get the named type behind a type, and [TypeName] to get its
// declaring object:
//
//	typeutil.Named(ctrlType)       // *types.Named for OrdersController
//	typeutil.Named(*ctrlType)      // same, pointers are unwrapped
//	typeutil.TypeName(aliasType)   // the aliased type's name, not the alias'
//
// Generic instances are mapped to their origin, so Repo[User] and Repo[Order]
// both resolve to Repo.
//
// # Qualified Names
//
// [QualifiedName] renders "pkg/path.Name", the format used by every flag of
// the analyzer:
//
//	github.com/beego/beego/v2/server/web.Controller
//
// # Embedding
//
// [EmbeddedNamed] lists the named types embedded in a struct in declaration
// order. Go has no inheritance; embedding is the closest thing to a base type
// and is what the hierarchy walk follows.
package typeutil
