package gen

//go:generate oapi-codegen --config=cfg.yaml ../../../spec/openapi.yaml
