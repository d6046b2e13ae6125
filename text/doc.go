// Package text assembles attributed strings from text-bearing shadow
// subtrees.
//
// A paragraph's content is the recursive concatenation of its children:
// raw text nodes contribute their string, nested text nodes overlay their
// attributes and recurse, and any other child becomes an attachment
// placeholder that the layout engine later replaces with the child's
// measured box.
//
// Child kinds are discriminated by node traits (TraitRawText, TraitText)
// rather than by type inspection, so the walk is a plain tagged switch.
//
// Fragments store a View projection, never a node: text fragments project
// the text node that contains them, attachment fragments project the
// attachment child itself. A fragment holding a node reference would
// create a cycle between the paragraph and its content.
package text
