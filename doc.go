// Package tween animates the position, rotation and size of a visual element
// over time, one display frame at a time, for [Ebitengine].
//
// A [Tween] interpolates between a start [State] and an end [State] over a
// fixed duration using an [Easing] curve. Each frame it renders the values
// with their units and writes them to an [Element]: x, y and rotate are
// joined into one transform expression, width, height, left and top go
// through their own setters.
//
// # Quick start
//
// The simplest way to get started is a [Stage], which owns a frame queue,
// a clock and the boxes being animated, and [Run], which opens a window:
//
//	stage := tween.NewStage(640, 480)
//	cube := tween.NewBox("cube", 40, 40)
//	stage.AddBox(cube)
//
//	slide, err := stage.NewTween(tween.Config{
//		Name:     "slide",
//		Element:  cube,
//		Duration: 5 * time.Second,
//		Infinite: true,
//		Start:    tween.S(tween.PropX, "0"),
//		End:      tween.S(tween.PropX, 600),
//		Easing:   tween.EaseInOutSineBounce,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	slide.Start()
//
//	tween.Run(stage, tween.RunConfig{Title: "Tween", ShowFPS: true})
//
// # Control
//
// [Tween.Start] runs or resumes a tween, [Tween.Stop] pauses it and
// [Tween.Restart] begins again from the start state. Stop does not cancel the
// frame callback already scheduled; that callback sees the tween is stopped
// and does nothing, so a later Start continues from where Stop left it.
//
// # Units
//
// Values are numbers ([Num]) or strings with a unit suffix ([Str]). Numbers
// take the property's default unit: "turn" for rotate, "%" for width and
// height, "px" otherwise. Start and end values of a property must agree on
// the unit; [New] reports a [*ConfigError] otherwise.
//
// # Definitions and scripts
//
// [LoadDocument] reads boxes and tweens from YAML, [Stage.Apply] adds them to
// a stage and [Watcher] reports edits for hot reloading. [LoadScript] reads a
// JSON control script that a [ScriptRunner] plays back frame by frame.
//
// Lifecycle events can be forwarded to a Donburi world with the adapter in
// tween/ecs.
//
// [Ebitengine]: https://ebitengine.org
package tween
