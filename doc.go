// Package veloxui provides the runtime types that code generated by
// veloxui compiles against.
//
// A user-authored component embeds one of the base types of this package
// and declares its own fields and callbacks:
//
//	type ProfileFragment struct {
//	    veloxui.Fragment
//	    Counter int
//	}
//
// The generator then emits ProfileFragment_, which embeds ProfileFragment,
// overrides the lifecycle methods it needs and delegates to the embedded
// implementation. Built instances are obtained through the companion
// builder:
//
//	f := NewProfileFragmentBuilder_().UserID("42").Build()
//
// # Main-thread model
//
// Like the platforms these types model, the view-change notifier and the
// lifecycle callbacks are not safe for concurrent use. All calls are
// expected to happen on a single UI goroutine.
package veloxui
