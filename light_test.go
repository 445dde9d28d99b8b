package trafficsim

import "testing"

func TestTrafficLight_StartsRed(t *testing.T) {
	light := NewTrafficLight(10, 3, 7)

	AssertLightState(t, light, LightRed)
}

func TestTrafficLight_FullCycle(t *testing.T) {
	light := NewTrafficLight(10, 3, 7)

	for i := 0; i < 7; i++ {
		light.Update(1)
	}
	AssertLightState(t, light, LightGreen)

	for i := 0; i < 10; i++ {
		light.Update(1)
	}
	AssertLightState(t, light, LightYellow)

	for i := 0; i < 3; i++ {
		light.Update(1)
	}
	AssertLightState(t, light, LightRed)
}

func TestTrafficLight_GreenHoldsFullDwell(t *testing.T) {
	light := CreateTestLight(LightGreen)

	for i := 0; i < 9; i++ {
		if light.Update(1) {
			t.Fatalf("Expected no transition before tick 10, got one at tick %d", i+1)
		}
	}
	AssertLightState(t, light, LightGreen)

	if !light.Update(1) {
		t.Error("Expected transition on tick 10")
	}
	AssertLightState(t, light, LightYellow)
}

func TestTrafficLight_UpdateReportsTransitions(t *testing.T) {
	light := NewTrafficLight(10, 3, 7)

	changed := 0
	for i := 0; i < 20; i++ {
		if light.Update(1) {
			changed++
		}
	}
	// From red: red expires at tick 7, green at 17, yellow at 20.
	if changed != 3 {
		t.Errorf("Expected 3 transitions in 20 ticks, got %d", changed)
	}
}

func TestTrafficLight_ExcessTimeDiscarded(t *testing.T) {
	light := CreateTestLight(LightGreen)

	// Steps of 4 cross the green threshold at 12 units, not 10; the
	// 2 extra units vanish on reset.
	if light.Update(4) || light.Update(4) {
		t.Fatal("Expected green to hold through 8 units")
	}
	if !light.Update(4) {
		t.Fatal("Expected transition once the timer passes 10")
	}
	AssertLightState(t, light, LightYellow)

	// Yellow dwell is 3, so a single 4-unit step flips it immediately.
	if !light.Update(4) {
		t.Error("Expected yellow to expire within one oversized step")
	}
	AssertLightState(t, light, LightRed)
}

func TestTrafficLight_SingleTransitionPerUpdate(t *testing.T) {
	light := NewTrafficLight(10, 3, 7)

	if !light.Update(30) {
		t.Fatal("Expected red to expire after an oversized step")
	}
	AssertLightState(t, light, LightGreen)

	if !light.Update(30) {
		t.Fatal("Expected green to expire after an oversized step")
	}
	AssertLightState(t, light, LightYellow)
}

func TestLightState_Names(t *testing.T) {
	cases := []struct {
		state  LightState
		name   string
		symbol string
	}{
		{LightRed, "RED", "🔴"},
		{LightYellow, "YELLOW", "🟡"},
		{LightGreen, "GREEN", "🟢"},
		{LightState(42), "UNKNOWN", "?"},
	}
	for _, c := range cases {
		if c.state.String() != c.name {
			t.Errorf("Expected name %s, got %s", c.name, c.state.String())
		}
		if c.state.Symbol() != c.symbol {
			t.Errorf("Expected symbol %s, got %s", c.symbol, c.state.Symbol())
		}
	}
}
