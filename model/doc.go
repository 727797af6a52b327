// Package model loads the pre-trained ridership regressors and runs
// inference. Models are ONNX exports of the offline-trained estimators,
// executed in-process through the ONNX Runtime shared library. The registry
// is filled once at startup and read-only afterwards; a model file missing
// on disk leaves that name out of the registry rather than failing startup.
package model
