// Package carousel implements the two testimonial carousel presentations as
// DOM-free state machines.
//
// Continuous is a marquee-style track that advances a fixed number of pixels
// per animation frame and wraps seamlessly because the binding renders the
// slide set twice. It has three modes (auto, dragging and paused) and follows
// the pointer one to one while dragging:
//
//	c, err := carousel.NewContinuous(len(slides))
//	if err != nil {
//		return err
//	}
//	c.OnResize(viewportWidth, slideWidth)
//
//	// every animation frame
//	track.SetStyle("transform", carousel.TranslateX(c.OnTick()))
//
// The rendered offset always stays in (-SingleSetWidth, 0] once the width is
// known, whatever the direction of the drag.
//
// Paged shows one slide at a time, advancing on a repeating timer, on
// indicator clicks and on horizontal swipes:
//
//	p, err := carousel.NewPaged(5,
//		carousel.WithOnChange(func(index int) { render(index) }),
//	)
//	if err != nil {
//		return err
//	}
//	p.Start()
//	defer p.Close()
//
// GoToSlide wraps a single step past either end: -1 lands on the last slide
// and total lands on the first.
package carousel
