package block

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/svssdeva/css-blocks/config"
	"github.com/svssdeva/css-blocks/css"
)

// SyntaxVersion is the highest definition-file syntax version this package
// understands.
const SyntaxVersion = 1

const (
	syntaxVersionRule  = "block-syntax-version"
	blockNameProp      = "block-name"
	blockClassProp     = "block-class"
	interfaceIndexProp = "block-interface-index"
)

var cssIdentRegexp = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)

// ProcessDefinition applies a parsed definition file to a block: it audits
// the file's @block-syntax-version, applies block-name and block-class
// declarations, and re-applies the committed interface indexes. Validation
// problems accumulate as diagnostics on the block; the returned error is
// non-nil only when the definition file and block disagree about which
// style nodes exist, which means they were not produced from the same
// source.
func ProcessDefinition(opts *config.Options, doc *css.StyleSheet, blk *Block, file string) error {
	if opts == nil {
		opts = config.Default()
	}
	rules := parseDefinitionRules(doc)
	checkSyntaxVersion(opts, doc, blk, file)
	applyNames(opts, rules, blk, file)
	return assignIndexes(opts, rules, blk, file)
}

// definitionRule pairs a qualified rule with its parsed declarations, so a
// definition file's rule blocks are reparsed once per pass over the file.
type definitionRule struct {
	rule  *css.QualifiedRule
	decls []*css.Declaration
	errs  css.ErrorList
}

func parseDefinitionRules(doc *css.StyleSheet) []definitionRule {
	var rules []definitionRule
	for _, rule := range doc.Rules {
		r, ok := rule.(*css.QualifiedRule)
		if !ok {
			continue
		}
		decls, errs := ruleDeclarations(r)
		rules = append(rules, definitionRule{rule: r, decls: decls, errs: errs})
	}
	return rules
}

// AssignInterfaceIndexes walks every qualified rule in a definition file
// and commits each block-interface-index declaration onto the style node
// its rule selector resolves to. Attribute nodes win over class nodes when
// a selector's key part names both. After assignment, every style node the
// block exposes must have received an index; nodes the definition file
// never mentioned are reported as diagnostics.
//
// The returned error is non-nil only when a selector resolves to no style
// node at all, which indicates the definition file was not generated from
// this block.
func AssignInterfaceIndexes(opts *config.Options, doc *css.StyleSheet, blk *Block, file string) error {
	if opts == nil {
		opts = config.Default()
	}
	return assignIndexes(opts, parseDefinitionRules(doc), blk, file)
}

// assignIndexes also reports the declaration syntax errors collected while
// parsing the rules, so each problem surfaces exactly once per pass.
func assignIndexes(opts *config.Options, rules []definitionRule, blk *Block, file string) error {
	rel := opts.RelPath(file)
	found := make(map[int]bool)

	for _, dr := range rules {
		for _, e := range dr.errs {
			blk.AddError(e.Message, rel, e.Pos)
		}
		for _, d := range dr.decls {
			if d.Name != interfaceIndexProp {
				continue
			}
			raw := stripQuotes(strings.TrimSpace(css.Sprint(d.Values)))
			index, err := strconv.Atoi(raw)
			if err != nil {
				blk.AddError("block-interface-index must be a number", rel, d.Pos)
				continue
			}
			if found[index] {
				blk.AddError("Each block-interface-index in a definition file must be unique", rel, d.Pos)
				continue
			}
			found[index] = true

			for _, sel := range blk.RuleSelectors(dr.rule) {
				target := blk.Resolve(sel)
				switch {
				case len(target.Attrs) > 0:
					target.Attrs[0].SetIndex(index)
				case len(target.Classes) > 0:
					target.Classes[0].SetIndex(index)
				default:
					return fmt.Errorf("selector %q in definition file %s does not match any style node in block %q", sel.String(), file, blk.Name())
				}
			}
		}
	}

	for _, st := range blk.Styles(true) {
		if !st.IndexWasSet() {
			blk.AddFileError(fmt.Sprintf("Style node %s doesn't have a preset interface index after parsing definition file. You may need to declare this style node in the definition file.", st.Source()), rel)
		}
	}
	return nil
}

// checkSyntaxVersion audits the @block-syntax-version at-rule a definition
// file must open with.
func checkSyntaxVersion(opts *config.Options, doc *css.StyleSheet, blk *Block, file string) {
	rel := opts.RelPath(file)
	for _, rule := range doc.Rules {
		r, ok := rule.(*css.AtRule)
		if !ok || r.Name != syntaxVersionRule {
			continue
		}
		raw := stripQuotes(strings.TrimSpace(css.Sprint(r.Prelude)))
		version, err := strconv.Atoi(raw)
		if err != nil {
			blk.AddError("block-syntax-version must be a number", rel, r.Pos)
			return
		}
		if version > SyntaxVersion {
			blk.AddError(fmt.Sprintf("Unsupported block-syntax-version %d; highest supported version is %d", version, SyntaxVersion), rel, r.Pos)
		}
		return
	}
	blk.AddFileError("Definition file is missing block-syntax-version declaration", rel)
}

// applyNames applies block-name and block-class declarations. block-name
// is honored only on the scope; block-class commits the output class name
// on whichever style node the rule's selector resolves to.
func applyNames(opts *config.Options, rules []definitionRule, blk *Block, file string) {
	rel := opts.RelPath(file)
	for _, dr := range rules {
		for _, d := range dr.decls {
			switch d.Name {
			case blockNameProp:
				name := stripQuotes(strings.TrimSpace(css.Sprint(d.Values)))
				if !cssIdentRegexp.MatchString(name) {
					blk.AddError(fmt.Sprintf("Illegal block name. '%s' is not a legal CSS identifier.", name), rel, d.Pos)
					continue
				}
				if onScope(blk, dr.rule) {
					blk.SetName(name)
				}
			case blockClassProp:
				name := stripQuotes(strings.TrimSpace(css.Sprint(d.Values)))
				if !cssIdentRegexp.MatchString(name) {
					blk.AddError(fmt.Sprintf("Illegal block-class. '%s' is not a legal CSS identifier.", name), rel, d.Pos)
					continue
				}
				for _, sel := range blk.RuleSelectors(dr.rule) {
					target := blk.Resolve(sel)
					switch {
					case len(target.Attrs) > 0:
						target.Attrs[0].setCompiledClass(name)
					case len(target.Classes) > 0:
						target.Classes[0].setCompiledClass(name)
					}
				}
			}
		}
	}
}

// onScope returns true if any selector recorded for the rule keys on the
// block scope.
func onScope(blk *Block, r *css.QualifiedRule) bool {
	for _, sel := range blk.RuleSelectors(r) {
		if sel.Key().Scope {
			return true
		}
	}
	return false
}

// ruleDeclarations parses a qualified rule's block into declarations.
func ruleDeclarations(r *css.QualifiedRule) ([]*css.Declaration, css.ErrorList) {
	if r.Block == nil {
		return nil, nil
	}
	var p css.Parser
	nodes := p.ParseDeclarations(css.NewValuesScanner(r.Block.Values))
	decls := make([]*css.Declaration, 0, len(nodes))
	for _, n := range nodes {
		if d, ok := n.(*css.Declaration); ok {
			decls = append(decls, d)
		}
	}
	return decls, p.Errors
}

// stripQuotes removes one matching pair of single or double quotes
// wrapping s.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
