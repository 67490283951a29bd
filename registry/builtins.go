package registry

// NewStandardRegistry returns a Registry with the built-in Convert family
// plus the node set this module's compiler targets: enough of Cycles'
// shader node catalog to exercise every optimizer, bump/displacement and
// closure-tree rule named in the spec. Real production registries add many
// more texture/closure nodes; those follow the same declaration shape and
// are omitted here as mechanical repetition.
func NewStandardRegistry() *Registry {
	r := NewRegistry()

	r.Register(&NodeType{
		Name: "Output",
		Inputs: []InputDecl{
			{Name: "Surface", Kind: Closure, Flags: Linkable},
			{Name: "Volume", Kind: Closure, Flags: Linkable},
			{Name: "Displacement", Kind: Vector, Flags: Linkable},
			{Name: "Normal", Kind: Normal, Flags: Linkable},
		},
		Special: SpecialOutput,
	})

	r.Register(&NodeType{
		Name:    "Value",
		Outputs: []OutputDecl{{Name: "Value", Kind: Float}},
	})
	r.Register(&NodeType{
		Name:    "Color",
		Outputs: []OutputDecl{{Name: "Color", Kind: Color}},
	})

	r.Register(&NodeType{
		Name: "Geometry",
		Outputs: []OutputDecl{
			{Name: "Position", Kind: Point},
			{Name: "Normal", Kind: Normal},
			{Name: "Tangent", Kind: Normal},
			{Name: "Incoming", Kind: Vector},
		},
		Special: SpecialGeometry,
	})
	r.Register(&NodeType{
		Name: "TextureCoordinate",
		Outputs: []OutputDecl{
			{Name: "Generated", Kind: Point},
			{Name: "UV", Kind: Point},
			{Name: "Normal", Kind: Normal},
		},
		Special: SpecialGeometry,
	})

	r.Register(&NodeType{
		Name: "Mix",
		Inputs: []InputDecl{
			{Name: "Type", Kind: Int}, // MixMode ordinal; not linkable, a node parameter
			{Name: "Fac", Kind: Float, Flags: Linkable},
			{Name: "Color1", Kind: Color, Flags: Linkable},
			{Name: "Color2", Kind: Color, Flags: Linkable},
		},
		Outputs: []OutputDecl{{Name: "Color", Kind: Color}},
	})
	r.Register(&NodeType{
		Name: "Math",
		Inputs: []InputDecl{
			{Name: "Type", Kind: Int}, // MathOp ordinal; not linkable
			{Name: "Value1", Kind: Float, Flags: Linkable},
			{Name: "Value2", Kind: Float, Flags: Linkable},
		},
		Outputs: []OutputDecl{{Name: "Value", Kind: Float}},
	})
	r.Register(&NodeType{
		Name: "VectorMath",
		Inputs: []InputDecl{
			{Name: "Type", Kind: Int}, // VectorMathOp ordinal; not linkable
			{Name: "Vector1", Kind: Vector, Flags: Linkable},
			{Name: "Vector2", Kind: Vector, Flags: Linkable},
		},
		Outputs: []OutputDecl{
			{Name: "Vector", Kind: Vector},
			{Name: "Value", Kind: Float},
		},
	})
	r.Register(&NodeType{
		Name: "Gamma",
		Inputs: []InputDecl{
			{Name: "Color", Kind: Color, Flags: Linkable},
			{Name: "Gamma", Kind: Float, Flags: Linkable, Default: FloatValue(1)},
		},
		Outputs: []OutputDecl{{Name: "Color", Kind: Color}},
	})
	r.Register(&NodeType{
		Name:    "RGBToBW",
		Inputs:  []InputDecl{{Name: "Color", Kind: Color, Flags: Linkable}},
		Outputs: []OutputDecl{{Name: "Val", Kind: Float}},
	})
	r.Register(&NodeType{
		Name: "BrightContrast",
		Inputs: []InputDecl{
			{Name: "Color", Kind: Color, Flags: Linkable},
			{Name: "Bright", Kind: Float, Flags: Linkable},
			{Name: "Contrast", Kind: Float, Flags: Linkable},
		},
		Outputs: []OutputDecl{{Name: "Color", Kind: Color}},
	})
	r.Register(&NodeType{
		Name: "Invert",
		Inputs: []InputDecl{
			{Name: "Fac", Kind: Float, Flags: Linkable, Default: FloatValue(1)},
			{Name: "Color", Kind: Color, Flags: Linkable},
		},
		Outputs: []OutputDecl{{Name: "Color", Kind: Color}},
	})
	r.Register(&NodeType{
		Name: "CombineXYZ",
		Inputs: []InputDecl{
			{Name: "X", Kind: Float, Flags: Linkable},
			{Name: "Y", Kind: Float, Flags: Linkable},
			{Name: "Z", Kind: Float, Flags: Linkable},
		},
		Outputs: []OutputDecl{{Name: "Vector", Kind: Vector}},
	})
	r.Register(&NodeType{
		Name:   "SeparateXYZ",
		Inputs: []InputDecl{{Name: "Vector", Kind: Vector, Flags: Linkable}},
		Outputs: []OutputDecl{
			{Name: "X", Kind: Float},
			{Name: "Y", Kind: Float},
			{Name: "Z", Kind: Float},
		},
	})
	r.Register(&NodeType{
		Name: "CombineRGB",
		Inputs: []InputDecl{
			{Name: "R", Kind: Float, Flags: Linkable},
			{Name: "G", Kind: Float, Flags: Linkable},
			{Name: "B", Kind: Float, Flags: Linkable},
		},
		Outputs: []OutputDecl{{Name: "Image", Kind: Color}},
	})
	r.Register(&NodeType{
		Name:   "SeparateRGB",
		Inputs: []InputDecl{{Name: "Image", Kind: Color, Flags: Linkable}},
		Outputs: []OutputDecl{
			{Name: "R", Kind: Float},
			{Name: "G", Kind: Float},
			{Name: "B", Kind: Float},
		},
	})
	r.Register(&NodeType{
		Name:    "Blackbody",
		Inputs:  []InputDecl{{Name: "Temperature", Kind: Float, Flags: Linkable, Default: FloatValue(1500)}},
		Outputs: []OutputDecl{{Name: "Color", Kind: Color}},
	})

	r.Register(&NodeType{
		Name: "DiffuseBSDF",
		Inputs: []InputDecl{
			{Name: "Color", Kind: Color, Flags: Linkable, Default: Float3Value(0.8, 0.8, 0.8)},
			{Name: "Normal", Kind: Normal, Flags: Linkable | LinkNormal},
			{Name: "SurfaceMixWeight", Kind: Float, Flags: SVMInternal, Default: FloatValue(1)},
		},
		Outputs: []OutputDecl{{Name: "BSDF", Kind: Closure}},
		Special: SpecialClosure,
	})
	r.Register(&NodeType{
		Name: "GlossyBSDF",
		Inputs: []InputDecl{
			{Name: "Distribution", Kind: Int}, // GlossyDistribution ordinal; not linkable
			{Name: "Color", Kind: Color, Flags: Linkable, Default: Float3Value(0.8, 0.8, 0.8)},
			{Name: "Roughness", Kind: Float, Flags: Linkable},
			{Name: "Normal", Kind: Normal, Flags: Linkable | LinkNormal},
			{Name: "SurfaceMixWeight", Kind: Float, Flags: SVMInternal, Default: FloatValue(1)},
		},
		Outputs: []OutputDecl{{Name: "BSDF", Kind: Closure}},
		Special: SpecialClosure,
	})
	r.Register(&NodeType{
		Name: "TransparentBSDF",
		Inputs: []InputDecl{
			{Name: "Color", Kind: Color, Flags: Linkable, Default: Float3Value(1, 1, 1)},
			{Name: "SurfaceMixWeight", Kind: Float, Flags: SVMInternal, Default: FloatValue(1)},
		},
		Outputs: []OutputDecl{{Name: "BSDF", Kind: Closure}},
		Special: SpecialClosure,
	})
	r.Register(&NodeType{
		Name: "GlassBSDF",
		Inputs: []InputDecl{
			{Name: "Color", Kind: Color, Flags: Linkable, Default: Float3Value(0.8, 0.8, 0.8)},
			{Name: "Roughness", Kind: Float, Flags: Linkable},
			{Name: "IOR", Kind: Float, Flags: Linkable, Default: FloatValue(1.45)},
			{Name: "Normal", Kind: Normal, Flags: Linkable | LinkNormal},
			{Name: "SurfaceMixWeight", Kind: Float, Flags: SVMInternal, Default: FloatValue(1)},
		},
		Outputs:     []OutputDecl{{Name: "BSDF", Kind: Closure}},
		Special:     SpecialClosure,
		ClosureCost: CostGlass,
	})
	r.Register(&NodeType{
		Name: "PrincipledBSDF",
		Inputs: []InputDecl{
			{Name: "BaseColor", Kind: Color, Flags: Linkable, Default: Float3Value(0.8, 0.8, 0.8)},
			{Name: "Roughness", Kind: Float, Flags: Linkable},
			{Name: "Emission", Kind: Color, Flags: Linkable},
			{Name: "Alpha", Kind: Float, Flags: Linkable, Default: FloatValue(1)},
			{Name: "Normal", Kind: Normal, Flags: Linkable | LinkNormal},
			{Name: "SurfaceMixWeight", Kind: Float, Flags: SVMInternal, Default: FloatValue(1)},
		},
		Outputs:     []OutputDecl{{Name: "BSDF", Kind: Closure}},
		Special:     SpecialClosure,
		ClosureCost: CostPrincipled,
	})
	r.Register(&NodeType{
		Name: "Emission",
		Inputs: []InputDecl{
			{Name: "Color", Kind: Color, Flags: Linkable, Default: Float3Value(1, 1, 1)},
			{Name: "Strength", Kind: Float, Flags: Linkable, Default: FloatValue(1)},
			{Name: "SurfaceMixWeight", Kind: Float, Flags: SVMInternal, Default: FloatValue(1)},
		},
		Outputs: []OutputDecl{{Name: "Emission", Kind: Closure}},
		Special: SpecialClosure,
	})
	r.Register(&NodeType{
		Name: "Background",
		Inputs: []InputDecl{
			{Name: "Color", Kind: Color, Flags: Linkable, Default: Float3Value(0.8, 0.8, 0.8)},
			{Name: "Strength", Kind: Float, Flags: Linkable, Default: FloatValue(1)},
			{Name: "SurfaceMixWeight", Kind: Float, Flags: SVMInternal, Default: FloatValue(1)},
		},
		Outputs: []OutputDecl{{Name: "Background", Kind: Closure}},
		Special: SpecialClosure,
	})
	r.Register(&NodeType{
		Name: "VolumeScatter",
		Inputs: []InputDecl{
			{Name: "Color", Kind: Color, Flags: Linkable, Default: Float3Value(0.8, 0.8, 0.8)},
			{Name: "Density", Kind: Float, Flags: Linkable, Default: FloatValue(1)},
			{Name: "VolumeMixWeight", Kind: Float, Flags: SVMInternal, Default: FloatValue(1)},
		},
		Outputs:   []OutputDecl{{Name: "Volume", Kind: Closure}},
		Special:   SpecialClosure,
		HasVolume: true,
	})

	r.Register(&NodeType{
		Name: "AddClosure",
		Inputs: []InputDecl{
			{Name: "Closure1", Kind: Closure, Flags: Linkable},
			{Name: "Closure2", Kind: Closure, Flags: Linkable},
		},
		Outputs: []OutputDecl{{Name: "Closure", Kind: Closure}},
		Special: SpecialClosureCombine,
		Combine: CombineAdd,
	})
	r.Register(&NodeType{
		Name: "MixClosure",
		Inputs: []InputDecl{
			{Name: "Fac", Kind: Float, Flags: Linkable},
			{Name: "Closure1", Kind: Closure, Flags: Linkable},
			{Name: "Closure2", Kind: Closure, Flags: Linkable},
		},
		Outputs: []OutputDecl{{Name: "Closure", Kind: Closure}},
		Special: SpecialClosureCombine,
		Combine: CombineMix,
	})
	r.Register(&NodeType{
		Name: "MixClosureWeight",
		Inputs: []InputDecl{
			{Name: "Fac", Kind: Float, Flags: Linkable},
			{Name: "Weight", Kind: Float, Flags: Linkable, Default: FloatValue(1)},
		},
		Outputs: []OutputDecl{
			{Name: "Weight1", Kind: Float},
			{Name: "Weight2", Kind: Float},
		},
		Special: SpecialNone,
	})

	r.Register(&NodeType{
		Name: "Bump",
		Inputs: []InputDecl{
			{Name: "Height", Kind: Float, Flags: Linkable},
			{Name: "Normal", Kind: Normal, Flags: Linkable | LinkNormal},
			{Name: "Strength", Kind: Float, Flags: Linkable, Default: FloatValue(1)},
			{Name: "Distance", Kind: Float, Flags: Linkable, Default: FloatValue(1)},
			{Name: "SampleCenter", Kind: Float, Flags: SVMInternal},
			{Name: "SampleX", Kind: Float, Flags: SVMInternal},
			{Name: "SampleY", Kind: Float, Flags: SVMInternal},
		},
		Outputs: []OutputDecl{{Name: "Normal", Kind: Normal}},
		Special: SpecialBump,
	})
	r.Register(&NodeType{
		Name: "SetNormal",
		Inputs: []InputDecl{
			{Name: "Direction", Kind: Normal, Flags: Linkable},
		},
		Outputs: []OutputDecl{{Name: "Normal", Kind: Normal}},
	})
	r.Register(&NodeType{
		Name: "Displacement",
		Inputs: []InputDecl{
			{Name: "Height", Kind: Float, Flags: Linkable},
			{Name: "Midlevel", Kind: Float, Flags: Linkable, Default: FloatValue(0.5)},
			{Name: "Scale", Kind: Float, Flags: Linkable, Default: FloatValue(1)},
			{Name: "Normal", Kind: Normal, Flags: Linkable | LinkNormal},
		},
		Outputs: []OutputDecl{{Name: "Displacement", Kind: Vector}},
	})
	r.Register(&NodeType{
		Name: "VectorDisplacement",
		Inputs: []InputDecl{
			{Name: "Vector", Kind: Vector, Flags: Linkable},
			{Name: "Midlevel", Kind: Float, Flags: Linkable},
			{Name: "Scale", Kind: Float, Flags: Linkable, Default: FloatValue(1)},
		},
		Outputs: []OutputDecl{{Name: "Displacement", Kind: Vector}},
	})

	r.Register(&NodeType{
		Name: "SkyTexture",
		Inputs: []InputDecl{
			{Name: "Vector", Kind: Point, Flags: Linkable | LinkTextureGenerated},
			{Name: "SunDirection", Kind: Vector, Flags: Linkable, Default: Float3Value(0, 0, 1)},
			{Name: "SunSize", Kind: Float, Flags: Linkable, Default: FloatValue(0.009)},
		},
		Outputs: []OutputDecl{{Name: "Color", Kind: Color}},
	})

	return r
}
