// Package testing provides test helpers for ripple buttons.
//
// A [Tester] mounts a surface on its own document with a fake clock and a
// build owner, and offers gesture helpers that go through real event
// dispatch:
//
//	func TestPress(t *testing.T) {
//	    tester := rbtest.NewTester(t, button.Config{Label: "OK"})
//	    tester.PressAndReleaseOutside()
//	    tester.Pump()
//	    // assert on tester.Effect().Calls()
//	}
//
// [RecordingEffect] records the calls a ripple receives, and [FakeClock]
// controls animation time.
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import rbtest "github.com/go-drift/ripplebutton/pkg/testing"
package testing
