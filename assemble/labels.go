package assemble

import (
	"fmt"
	"log/slog"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// labelEntry is one range in a PageLabels number tree: the label
// dictionary applies from zero-based page index start until the next
// entry.
type labelEntry struct {
	start int
	dict  types.Dict
}

// readPageLabels extracts the flat Nums entries from a document's
// PageLabels tree. A document without labels yields nil. Trees split
// into Kids nodes are rare enough that we treat them as unlabeled
// rather than flattening them.
func readPageLabels(ctx *model.Context) ([]labelEntry, error) {
	catalog, err := ctx.Catalog()
	if err != nil {
		return nil, err
	}

	obj, found := catalog.Find("PageLabels")
	if !found {
		return nil, nil
	}
	tree, err := ctx.DereferenceDict(obj)
	if err != nil || tree == nil {
		return nil, err
	}

	if _, hasKids := tree.Find("Kids"); hasKids {
		slog.Warn("page label tree uses kids nodes, treating document as unlabeled")
		return nil, nil
	}

	numsObj, found := tree.Find("Nums")
	if !found {
		return nil, nil
	}
	nums, err := ctx.DereferenceArray(numsObj)
	if err != nil {
		return nil, err
	}
	if len(nums)%2 != 0 {
		return nil, fmt.Errorf("malformed page label Nums array: %d elements", len(nums))
	}

	entries := make([]labelEntry, 0, len(nums)/2)
	for i := 0; i < len(nums); i += 2 {
		idx, err := ctx.DereferenceInteger(nums[i])
		if err != nil || idx == nil {
			return nil, fmt.Errorf("page label index at %d is not an integer", i)
		}
		dict, err := ctx.DereferenceDict(nums[i+1])
		if err != nil || dict == nil {
			return nil, fmt.Errorf("page label value at %d is not a dict", i+1)
		}
		entries = append(entries, labelEntry{start: idx.Value(), dict: dict})
	}
	return entries, nil
}

// shiftLabels builds the merged document's label ranges. The inserted
// cover page gets a fixed text label; the source's own ranges shift by
// the cover's page count when the cover comes first, and stay in place
// otherwise. A source without labels gets a decimal range so its pages
// still read 1..N in viewers.
func shiftLabels(source []labelEntry, sourcePages, coverPages int, coverFirst bool, label string) []labelEntry {
	coverDict := types.Dict{"P": types.StringLiteral(label)}
	decimal := types.Dict{"S": types.Name("D"), "St": types.Integer(1)}

	var entries []labelEntry
	if coverFirst {
		entries = append(entries, labelEntry{start: 0, dict: coverDict})
		if len(source) == 0 {
			entries = append(entries, labelEntry{start: coverPages, dict: decimal})
			return entries
		}
		for _, e := range source {
			entries = append(entries, labelEntry{start: e.start + coverPages, dict: e.dict})
		}
		return entries
	}

	if len(source) == 0 {
		entries = append(entries, labelEntry{start: 0, dict: decimal})
	} else {
		entries = append(entries, source...)
	}
	entries = append(entries, labelEntry{start: sourcePages, dict: coverDict})
	return entries
}

// writePageLabels replaces the merged document's PageLabels tree with
// a flat Nums array built from entries.
func writePageLabels(ctx *model.Context, entries []labelEntry) error {
	catalog, err := ctx.Catalog()
	if err != nil {
		return err
	}

	nums := make(types.Array, 0, len(entries)*2)
	for _, e := range entries {
		nums = append(nums, types.Integer(e.start), e.dict)
	}
	catalog["PageLabels"] = types.Dict{"Nums": nums}
	return nil
}
