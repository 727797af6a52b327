package model

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// ortEnv manages global ONNX Runtime initialization (process-wide
// singleton). Only the first call has any effect.
var ortEnv struct {
	once sync.Once
	err  error
}

func initORT(libPath string) error {
	ortEnv.once.Do(func() {
		if libPath != "" {
			ort.SetSharedLibraryPath(libPath)
		}
		ortEnv.err = ort.InitializeEnvironment()
	})
	return ortEnv.err
}

// onnxPredictor wraps a session for a single-input regression model as
// exported from the offline training jobs: one float tensor input of shape
// [batch, nFeatures], one output of shape [batch, 1] or [batch].
type onnxPredictor struct {
	session    *ort.DynamicAdvancedSession
	inputName  string
	outputName string
	nFeatures  int64
}

func newONNXPredictor(modelPath, libPath string) (*onnxPredictor, error) {
	if err := initORT(libPath); err != nil {
		return nil, fmt.Errorf("onnx: failed to initialize runtime: %w", err)
	}

	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to read model info: %w", err)
	}
	if len(inputs) != 1 {
		return nil, fmt.Errorf("onnx: expected a single input tensor, got %d", len(inputs))
	}
	if len(outputs) == 0 {
		return nil, fmt.Errorf("onnx: model has no outputs")
	}
	inDims := inputs[0].Dimensions
	if len(inDims) != 2 {
		return nil, fmt.Errorf("onnx: expected 2D input tensor [batch, features], got %v", inDims)
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session options: %w", err)
	}
	defer opts.Destroy()
	opts.SetIntraOpNumThreads(1)
	opts.SetInterOpNumThreads(1)

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{inputs[0].Name},
		[]string{outputs[0].Name},
		opts,
	)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session: %w", err)
	}

	return &onnxPredictor{
		session:    session,
		inputName:  inputs[0].Name,
		outputName: outputs[0].Name,
		nFeatures:  inDims[1],
	}, nil
}

func (p *onnxPredictor) Predict(features [][]float32) ([]float64, error) {
	if len(features) == 0 {
		return []float64{}, nil
	}
	width := int64(len(features[0]))
	if p.nFeatures > 0 && width != p.nFeatures {
		return nil, fmt.Errorf("onnx: model takes %d features, got %d", p.nFeatures, width)
	}
	batch := int64(len(features))
	flat := make([]float32, 0, batch*width)
	for _, row := range features {
		if int64(len(row)) != width {
			return nil, fmt.Errorf("onnx: ragged feature matrix")
		}
		flat = append(flat, row...)
	}

	tIn, err := ort.NewTensor(ort.NewShape(batch, width), flat)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create input tensor: %w", err)
	}
	defer tIn.Destroy()

	tOut, err := ort.NewEmptyTensor[float32](ort.NewShape(batch, 1))
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create output tensor: %w", err)
	}
	defer tOut.Destroy()

	if err := p.session.Run([]ort.Value{tIn}, []ort.Value{tOut}); err != nil {
		return nil, fmt.Errorf("onnx: inference failed: %w", err)
	}

	src := tOut.GetData()
	if int64(len(src)) != batch {
		return nil, fmt.Errorf("onnx: expected %d predictions, got %d", batch, len(src))
	}
	out := make([]float64, batch)
	for i, v := range src {
		out[i] = float64(v)
	}
	return out, nil
}

func (p *onnxPredictor) Close() error {
	return p.session.Destroy()
}
