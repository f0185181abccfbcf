// Package plottools is the central layout module for scientific-figure
// generation scripts.
//
// The package serves three use cases:
//
//  1. Centralized plot styling - Palettes, line, point, linepoint, and
//     fill styles, plus screen/paper/sketch presets. Styles are exported
//     as matplotlib style sheets or JSON so figure scripts never hardcode
//     colors, fonts, or line widths.
//
//  2. Convention checking - Check walks a figure directory and verifies
//     the authoring conventions: one script per figure with matching base
//     filenames, and display data read only from .npz or .csv files,
//     never from pickled data.
//
//  3. Embeddable CLI via NewCommand - Parent CLI tools can attach the
//     complete command tree to their Cobra root command, providing
//     "mytool check", "mytool styles export", "mytool data info", etc.
//
// # Authoring Conventions
//
// Every figure of a manuscript is generated by exactly one script whose
// base filename matches the figure's base filename. Scripts only plot:
// anything expensive is precomputed into .npz or .csv files next to the
// scripts. Shared layout settings (font size, color palette, line widths)
// live in this module, so no figure needs manual post-processing.
//
// # Style Naming
//
// Each style is derived from a main color indicated by a capital letter;
// substyles share the hue family (A1, A2, ...). Line styles come in a
// plain and a minor ("m") variant, point and linepoint styles in plain,
// circular ("c"), and minor ("m") variants, and fill styles in plain,
// solid ("s"), and alpha ("a") variants.
package plottools
