package network_test

import (
	"testing"

	"github.com/perceptor-ml/perceptor/activation"
	"github.com/perceptor-ml/perceptor/network"
	"github.com/perceptor-ml/perceptor/persist"
)

// TestPublicAPI exercises the public surface end-to-end: build, train,
// persist, restore.
func TestPublicAPI(t *testing.T) {
	net := network.New(2, 1, []*network.Layer{
		network.NewLayer([][]float64{{0.3, 0.7}}, []float64{0.1}, activation.Sigmoid{}),
	})

	input := []float64{1, 1}
	before := net.Backpropagate(input, []float64{0}, 0.5).TotalError
	after := net.Backpropagate(input, []float64{0}, 0.5).TotalError
	if after >= before {
		t.Errorf("error after second pass = %v, want less than %v", after, before)
	}

	data, err := persist.Encode(net)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	restored, err := persist.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := net.Forward(input)
	got := restored.Forward(input)
	if got[0] != want[0] {
		t.Errorf("restored Forward = %v, want %v", got, want)
	}
}
