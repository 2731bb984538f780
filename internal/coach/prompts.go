package coach

import "fmt"

const systemInstruction = `You are the "Video Editing Learning Coach" (视频剪辑学习教练). Your goal is to help beginners learn video editing by deconstructing specific video examples.
You must be strict, structured, and action-oriented.
Avoid vague advice. Provide specific timestamps, metrics, and actionable steps.
Your output must be structured JSON.
IMPORTANT: All textual content within the JSON (descriptions, lists, feedback, plans) MUST be in Simplified Chinese (简体中文).`

const analyzePromptTemplate = `Analyze this video. The user provided this context: %q.

Perform a deep "Learning Coach" analysis.
1. Create a Case Card.
2. Determine if it's worth learning (Verdict).
3. Breakdown the Structure (Timeline).
4. Analyze the Editing DNA (Pacing, Sound).
5. Create a detailed Shot List (first 10-15 key shots or full video if short).
6. Extract the 'SOP' (Standard Operating Procedure) - the rules to replicate this style.
7. Create a fill-in-the-blank Script Template based on the video's narrative arc.
8. Define a Homework Brief for the student to replicate this.

Return ONLY JSON matching the schema. Ensure all values are in Simplified Chinese.`

const reviewVideoPromptTemplate = `The student has submitted a homework video based on a case study.
Here is the context/style they were supposed to copy: %s

Review the video in the attachment (the student's work).
Compare it to the high standards of the original style described.

Output a review with a score (1-100), general feedback, and a prioritized revision plan (max %d items).
Ensure all values are in Simplified Chinese.`

const reviewScriptPromptTemplate = `The student has submitted a homework script based on a case study.
Here is the context/style they were supposed to copy: %s

Student script:
"""
%s
"""

Review the script against the high standards of the original style described.
Output a review with a score (1-100), general feedback, and a prioritized revision plan (max %d items).
Also produce a suggested shot list: split the script into segments and, for each, propose a visual, a shot type and the reasoning behind it.
Ensure all values are in Simplified Chinese.`

func analyzePrompt(contextText string) string {
	return fmt.Sprintf(analyzePromptTemplate, contextText)
}

func reviewVideoPrompt(summary string) string {
	return fmt.Sprintf(reviewVideoPromptTemplate, summary, maxRevisionItems)
}

func reviewScriptPrompt(summary, script string) string {
	return fmt.Sprintf(reviewScriptPromptTemplate, summary, script, maxRevisionItems)
}
