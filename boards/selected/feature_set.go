//go:build bsp_features

package selected

func init() { explicit = true }
